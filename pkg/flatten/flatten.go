// Package flatten substitutes placeholder names in text with values
// from an explicit name→value mapping. The mapping is always passed
// in; resolving it from the process environment happens at the CLI
// boundary, never here.
package flatten

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/textops/textops/pkg/env"
	"github.com/textops/textops/pkg/errors"
	"github.com/textops/textops/pkg/logging"
)

// Default placeholder delimiters.
const (
	DefaultLeft  = "{{"
	DefaultRight = "}}"
)

// Options controls a flatten run.
type Options struct {
	// Left and Right are the placeholder delimiters. Empty values fall
	// back to "{{" and "}}".
	Left  string
	Right string

	// Names is the ordered list of variable names to substitute. When
	// nil, every name in the mapping is substituted in sorted order.
	// A listed name missing from the mapping substitutes to the empty
	// string. Substitution is processed name by name in this order, so
	// overlapping placeholders resolve order-dependently.
	Names []string
}

// Flatten replaces every occurrence of left+name+right in text with
// the name's value. Each replacement is a plain literal find-and-
// replace; unresolved names are not an error.
func Flatten(text string, vars map[string]string, opts Options) string {
	left, right := opts.delimiters()

	names := opts.Names
	if names == nil {
		names = env.Names(vars)
	}

	for _, name := range names {
		if !env.ValidName(name) {
			continue
		}
		text = strings.ReplaceAll(text, left+name+right, vars[name])
	}
	return text
}

// FlattenFile applies Flatten to the contents of the file at path and
// rewrites it in place. The rewrite goes through a temporary sibling
// file and a rename, so concurrent readers never observe a partially
// substituted file and any failure leaves the original untouched.
// A missing or non-regular path yields a FILE_NOT_FOUND error.
func FlattenFile(path string, vars map[string]string, opts Options) error {
	logger := logging.GetLogger("flatten")

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrFileNotFound, "no such file %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %q", path)
	}

	flattened := Flatten(string(content), vars, opts)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create temp file for %q", path)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to set mode on temp file for %q", path)
	}
	if _, err := tmp.WriteString(flattened); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write temp file for %q", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to close temp file for %q", path)
	}

	// Rename is atomic on POSIX, so readers see either the old or the
	// new contents, never a mix.
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %q", path)
	}

	logger.Debug().
		Str("path", path).
		Int("bytes", len(flattened)).
		Msg("Flattened file in place")
	return nil
}

func (o Options) delimiters() (string, string) {
	left, right := o.Left, o.Right
	if left == "" {
		left = DefaultLeft
	}
	if right == "" {
		right = DefaultRight
	}
	return left, right
}
