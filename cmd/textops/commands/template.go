package commands

import (
	"github.com/spf13/cobra"

	"github.com/textops/textops/pkg/config"
	"github.com/textops/textops/pkg/env"
	"github.com/textops/textops/pkg/types"
)

func newFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flatten TEXT [NAME...]",
		Short:   MsgFlattenShort,
		Long:    MsgFlattenLong,
		GroupID: "templates",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, "flatten", templateRequest(args))
		},
	}
}

func newFlattenFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flatten-file PATH [NAME...]",
		Short:   MsgFlattenFileShort,
		Long:    MsgFlattenFileLong,
		GroupID: "templates",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, "flatten-file", templateRequest(args))
		},
	}
}

// templateRequest builds the request for a template command. The
// process environment is snapshotted here, at the boundary; the core
// only ever sees the explicit map.
func templateRequest(args []string) types.Request {
	cfg := config.Load()
	return types.Request{
		Args:  args,
		Vars:  env.Snapshot(),
		Left:  cfg.Flatten.Left,
		Right: cfg.Flatten.Right,
	}
}
