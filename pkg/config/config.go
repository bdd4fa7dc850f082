// Package config resolves operation defaults from layered sources:
// built-in defaults, an optional config file in the XDG config
// directory, and TEXTOPS_-prefixed environment variables. Malformed
// sources are never fatal; they fall back to the layer below.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/textops/textops/pkg/flatten"
	"github.com/textops/textops/pkg/listcodec"
	"github.com/textops/textops/pkg/logging"
)

// Config holds the resolved operation defaults.
type Config struct {
	Split   SplitConfig   `koanf:"split"`
	Join    JoinConfig    `koanf:"join"`
	Sort    SortConfig    `koanf:"sort"`
	Flatten FlattenConfig `koanf:"flatten"`
}

// SplitConfig configures the split operation.
type SplitConfig struct {
	Delimiter string `koanf:"delimiter"`
}

// JoinConfig configures the join operation.
type JoinConfig struct {
	Delimiter string `koanf:"delimiter"`
}

// SortConfig configures the sort operation.
type SortConfig struct {
	Delimiter string `koanf:"delimiter"`
}

// FlattenConfig configures the template operations.
type FlattenConfig struct {
	Left  string `koanf:"left"`
	Right string `koanf:"right"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Split:   SplitConfig{Delimiter: listcodec.DefaultSplitDelimiter},
		Join:    JoinConfig{Delimiter: listcodec.DefaultJoinDelimiter},
		Sort:    SortConfig{Delimiter: listcodec.DefaultSortDelimiter},
		Flatten: FlattenConfig{Left: flatten.DefaultLeft, Right: flatten.DefaultRight},
	}
}

// Load resolves the configuration. Layering, lowest to highest:
// built-in defaults, config file ($XDG_CONFIG_HOME/textops/config.toml
// or config.yaml), TEXTOPS_* environment variables, and finally the
// FLATTEN_L/FLATTEN_R compatibility overrides. A broken layer is
// logged and skipped, never fatal.
func Load() Config {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		logger.Warn().Err(err).Msg("Failed to load default config")
	}

	// 2. Config file, if present
	if path, parser := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to load config file, using defaults")
		}
	}

	// 3. Environment: TEXTOPS_SPLIT_DELIMITER → split.delimiter
	envProvider := env.Provider("TEXTOPS_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "TEXTOPS_")), "_", ".", -1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		logger.Warn().Err(err).Msg("Failed to load environment config")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		logger.Warn().Err(err).Msg("Failed to unmarshal config, using defaults")
		cfg = Default()
	}

	// 4. FLATTEN_L/FLATTEN_R override the placeholder delimiters for
	// both template commands
	if l := os.Getenv("FLATTEN_L"); l != "" {
		cfg.Flatten.Left = l
	}
	if r := os.Getenv("FLATTEN_R"); r != "" {
		cfg.Flatten.Right = r
	}

	// Empty values are malformed input; fall back per field
	cfg.fillDefaults()
	return cfg
}

// fillDefaults replaces empty fields with the built-in defaults.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Split.Delimiter == "" {
		c.Split.Delimiter = def.Split.Delimiter
	}
	if c.Join.Delimiter == "" {
		c.Join.Delimiter = def.Join.Delimiter
	}
	if c.Sort.Delimiter == "" {
		c.Sort.Delimiter = def.Sort.Delimiter
	}
	if c.Flatten.Left == "" {
		c.Flatten.Left = def.Flatten.Left
	}
	if c.Flatten.Right == "" {
		c.Flatten.Right = def.Flatten.Right
	}
}

func defaultMap() map[string]interface{} {
	def := Default()
	return map[string]interface{}{
		"split.delimiter": def.Split.Delimiter,
		"join.delimiter":  def.Join.Delimiter,
		"sort.delimiter":  def.Sort.Delimiter,
		"flatten.left":    def.Flatten.Left,
		"flatten.right":   def.Flatten.Right,
	}
}

// findConfigFile locates the first existing config file under the XDG
// config directory and returns it with its parser.
func findConfigFile() (string, koanf.Parser) {
	configHome := xdg.ConfigHome
	if configHome == "" {
		return "", nil
	}

	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
	}

	for _, c := range candidates {
		path := filepath.Join(configHome, "textops", c.name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, c.parser
		}
	}
	return "", nil
}
