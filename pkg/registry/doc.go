// Package registry provides a generic, type-safe registry plus the
// global operation registry the CLI dispatches through. Operation
// packages register themselves in init() functions.
package registry
