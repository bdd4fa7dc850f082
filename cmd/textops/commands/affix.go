package commands

import (
	"github.com/spf13/cobra"

	"github.com/textops/textops/pkg/types"
)

func newCommonPrefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "common-prefix [STRING...]",
		Short:   MsgCommonPrefixShort,
		GroupID: "lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := affixRequest(cmd, args)
			if err != nil {
				return err
			}
			return dispatch(cmd, "common-prefix", req)
		},
	}
}

func newCommonSuffixCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "common-suffix [STRING...]",
		Short:   MsgCommonSuffixShort,
		GroupID: "lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := affixRequest(cmd, args)
			if err != nil {
				return err
			}
			return dispatch(cmd, "common-suffix", req)
		},
	}
}

// affixRequest builds the request for an affix command: the strings
// come from the arguments, or from stdin (one per line) when no
// arguments are given.
func affixRequest(cmd *cobra.Command, args []string) (types.Request, error) {
	if len(args) > 0 {
		return types.Request{Args: args}, nil
	}
	input, err := readInput(cmd)
	if err != nil {
		return types.Request{}, err
	}
	return types.Request{Input: input}, nil
}
