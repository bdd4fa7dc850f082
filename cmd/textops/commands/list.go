package commands

import (
	"github.com/spf13/cobra"

	"github.com/textops/textops/pkg/config"
	"github.com/textops/textops/pkg/types"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "split [DELIM]",
		Short:   MsgSplitShort,
		GroupID: "lists",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			delim := argOrDefault(args, config.Load().Split.Delimiter)
			return dispatch(cmd, "split", types.Request{Input: input, Args: []string{delim}})
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "join [DELIM]",
		Short:   MsgJoinShort,
		GroupID: "lists",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			delim := argOrDefault(args, config.Load().Join.Delimiter)
			return dispatch(cmd, "join", types.Request{Input: input, Args: []string{delim}})
		},
	}
}

func newSortCmd() *cobra.Command {
	var unique, reverse bool

	cmd := &cobra.Command{
		Use:     "sort [-u] [-r] [DELIM]",
		Short:   MsgSortShort,
		GroupID: "lists",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			delim := argOrDefault(args, config.Load().Sort.Delimiter)
			return dispatch(cmd, "sort", types.Request{
				Input:   input,
				Args:    []string{delim},
				Unique:  unique,
				Reverse: reverse,
			})
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, MsgFlagUnique)
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, MsgFlagReverse)
	return cmd
}

// argOrDefault returns the first positional argument or the configured
// fallback.
func argOrDefault(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}
