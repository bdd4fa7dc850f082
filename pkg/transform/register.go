package transform

import (
	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/types"
)

func init() {
	registry.MustRegisterOperation(types.Operation{
		Name:    "lower",
		Group:   "case",
		Summary: "Map every character to lowercase",
		Filter: func(req types.Request) (string, error) {
			return Lower(req.Input), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "upper",
		Group:   "case",
		Summary: "Map every character to uppercase",
		Filter: func(req types.Request) (string, error) {
			return Upper(req.Input), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "title",
		Group:   "case",
		Summary: "Uppercase the first letter of every word",
		Filter: func(req types.Request) (string, error) {
			return Title(req.Input), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "squeeze",
		Group:   "trim",
		Summary: "Collapse character runs and trim the ends",
		Filter: func(req types.Request) (string, error) {
			return Squeeze(req.Input, optionalCutset(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "trim",
		Group:   "trim",
		Summary: "Remove cutset characters from both ends",
		Filter: func(req types.Request) (string, error) {
			return Trim(req.Input, optionalCutset(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "ltrim",
		Group:   "trim",
		Summary: "Remove cutset characters from the start",
		Filter: func(req types.Request) (string, error) {
			return TrimLeft(req.Input, optionalCutset(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "rtrim",
		Group:   "trim",
		Summary: "Remove cutset characters from the end",
		Filter: func(req types.Request) (string, error) {
			return TrimRight(req.Input, optionalCutset(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "squeeze-lines",
		Group:   "lines",
		Summary: "Collapse runs of blank lines and trim blank edges",
		Filter: func(req types.Request) (string, error) {
			return SqueezeLines(req.Input), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "trim-lines",
		Group:   "lines",
		Summary: "Drop blank lines at both ends of the text",
		Filter: func(req types.Request) (string, error) {
			return TrimLines(req.Input), nil
		},
	})
}

// optionalCutset returns the cutset argument when one was given, empty
// (meaning whitespace) otherwise.
func optionalCutset(req types.Request) string {
	if len(req.Args) > 0 {
		return req.Args[0]
	}
	return ""
}
