package flatten

import (
	"github.com/textops/textops/pkg/errors"
	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/types"
)

func init() {
	registry.MustRegisterOperation(types.Operation{
		Name:    "flatten",
		Group:   "template",
		Summary: "Substitute placeholders in text with variable values",
		Filter: func(req types.Request) (string, error) {
			if len(req.Args) == 0 {
				return "", errors.New(errors.ErrInvalidInput, "flatten requires the template text")
			}
			return Flatten(req.Args[0], req.Vars, requestOptions(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "flatten-file",
		Group:   "template",
		Summary: "Substitute placeholders in a file, rewriting it in place",
		Filter: func(req types.Request) (string, error) {
			if len(req.Args) == 0 {
				return "", errors.New(errors.ErrInvalidInput, "flatten-file requires a file path")
			}
			return "", FlattenFile(req.Args[0], req.Vars, requestOptions(req))
		},
	})
}

// requestOptions maps a request onto flatten options: args after the
// first are the ordered allow-list of names.
func requestOptions(req types.Request) Options {
	opts := Options{Left: req.Left, Right: req.Right}
	if len(req.Args) > 1 {
		opts.Names = req.Args[1:]
	}
	return opts
}
