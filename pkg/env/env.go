// Package env adapts the ambient process environment into the explicit
// name→value maps the core packages consume. Nothing below the process
// boundary reads os.Environ directly.
package env

import (
	"os"
	"sort"
	"strings"
)

// Snapshot copies the current process environment into a map. The copy
// is independent: later changes to the process environment do not show
// up in it.
func Snapshot() map[string]string {
	vars := make(map[string]string)
	for _, entry := range os.Environ() {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}
	return vars
}

// Pick filters vars down to the given allow-list of names. Names absent
// from vars map to the empty string, matching unset-variable expansion.
func Pick(vars map[string]string, names []string) map[string]string {
	picked := make(map[string]string, len(names))
	for _, name := range names {
		picked[name] = vars[name]
	}
	return picked
}

// Names returns the variable names in vars, sorted.
func Names(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidName reports whether name is a well-formed variable name
// ([A-Za-z0-9_]+).
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
