package listcodec

import (
	"strings"

	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/types"
)

func init() {
	registry.MustRegisterOperation(types.Operation{
		Name:    "split",
		Group:   "list",
		Summary: "Split delimited text into one token per line",
		Filter: func(req types.Request) (string, error) {
			tokens := Split(req.Input, optionalDelim(req))
			return strings.Join(tokens, "\n"), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "join",
		Group:   "list",
		Summary: "Join one token per line into delimited text",
		Filter: func(req types.Request) (string, error) {
			tokens := inputLines(req.Input)
			return Join(tokens, optionalDelim(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "sort",
		Group:   "list",
		Summary: "Sort the tokens of a delimited list",
		Filter: func(req types.Request) (string, error) {
			return SortList(req.Input, optionalDelim(req), req.Unique, req.Reverse), nil
		},
	})
}

// optionalDelim returns the delimiter argument when one was given,
// empty (meaning the operation default) otherwise.
func optionalDelim(req types.Request) string {
	if len(req.Args) > 0 {
		return req.Args[0]
	}
	return ""
}

// inputLines turns newline-separated input into a token sequence,
// ignoring the final line terminator.
func inputLines(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(input, "\n"), "\n")
}
