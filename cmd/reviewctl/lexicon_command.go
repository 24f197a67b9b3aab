package main

import (
	"fmt"

	"github.com/pscheid92/reviewpulse/internal/sentiment"
	"github.com/spf13/cobra"
)

func newLexiconCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "List the positive and negative word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positive := sentiment.PositiveWords()
			negative := sentiment.NegativeWords()

			if jsonOutput {
				return writeJSON(cmd, map[string][]string{
					"positive": positive,
					"negative": negative,
				})
			}

			rows := make([][]string, 0, max(len(positive), len(negative)))
			for i := range max(len(positive), len(negative)) {
				row := []string{"", ""}
				if i < len(positive) {
					row[0] = positive[i]
				}
				if i < len(negative) {
					row[1] = negative[i]
				}
				rows = append(rows, row)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Positive", "Negative"}, rows, nil))
			return err
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
