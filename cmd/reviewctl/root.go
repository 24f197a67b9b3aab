package main

import (
	"github.com/pscheid92/reviewpulse/internal/platform/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reviewctl",
		Short:         "Classify movie reviews from the command line",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newExplainCommand())
	rootCmd.AddCommand(newLexiconCommand())

	return rootCmd
}
