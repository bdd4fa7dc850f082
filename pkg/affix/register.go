package affix

import (
	"strings"

	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/types"
)

func init() {
	registry.MustRegisterOperation(types.Operation{
		Name:    "common-prefix",
		Group:   "affix",
		Summary: "Longest prefix shared by every string",
		Filter: func(req types.Request) (string, error) {
			return CommonPrefix(requestItems(req)), nil
		},
	})
	registry.MustRegisterOperation(types.Operation{
		Name:    "common-suffix",
		Group:   "affix",
		Summary: "Longest suffix shared by every string",
		Filter: func(req types.Request) (string, error) {
			return CommonSuffix(requestItems(req)), nil
		},
	})
}

// requestItems returns the input strings for an affix operation:
// positional arguments when given, otherwise one string per stdin
// line.
func requestItems(req types.Request) []string {
	if len(req.Args) > 0 {
		return req.Args
	}
	if req.Input == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(req.Input, "\n"), "\n")
}
