package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textops/textops/pkg/registry"
	"github.com/textops/textops/pkg/style"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ops [PREFIX]",
		Short:   MsgOpsShort,
		Long:    MsgOpsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}

			styled := style.Terminal()
			w := cmd.OutOrStdout()

			for _, name := range registry.ListOperations(prefix) {
				op, err := registry.GetOperation(name)
				if err != nil {
					continue
				}
				if styled {
					fmt.Fprintf(w, "%s  %s  %s\n",
						style.OpNameStyle.Render(fmt.Sprintf("%-15s", op.Name)),
						style.OpGroupStyle.Render(fmt.Sprintf("%-9s", op.Group)),
						style.OpSummaryStyle.Render(op.Summary))
				} else {
					fmt.Fprintf(w, "%-15s %-9s %s\n", op.Name, op.Group, op.Summary)
				}
			}
			return nil
		},
	}
}
