package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/textops/textops/internal/version"
	"github.com/textops/textops/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "textops",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but exit non-zero
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Command groups
	rootCmd.AddGroup(&cobra.Group{ID: "filters", Title: "TEXT FILTERS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "lists", Title: "LISTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "templates", Title: "TEMPLATES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	// Stdin→stdout filter commands
	for _, spec := range pipeSpecs() {
		rootCmd.AddCommand(newPipeCmd(spec))
	}

	// List commands with configurable delimiters
	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newSortCmd())

	// Affix commands
	rootCmd.AddCommand(newCommonPrefixCmd())
	rootCmd.AddCommand(newCommonSuffixCmd())

	// Template commands
	rootCmd.AddCommand(newFlattenCmd())
	rootCmd.AddCommand(newFlattenFileCmd())

	// Misc
	rootCmd.AddCommand(newOpsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textops version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
