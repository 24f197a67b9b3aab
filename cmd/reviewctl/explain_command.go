package main

import (
	"fmt"
	"strconv"

	"github.com/pscheid92/reviewpulse/internal/sentiment"
	"github.com/spf13/cobra"
)

type explainOutput struct {
	Sentiment string         `json:"sentiment"`
	Positive  int            `json:"positive"`
	Negative  int            `json:"negative"`
	Matches   []explainMatch `json:"matches"`
}

type explainMatch struct {
	Token    string `json:"token"`
	Polarity string `json:"polarity"`
}

func newExplainCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "explain [text...]",
		Short: "Show which words decided the sentiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := reviewText(cmd, args)
			if err != nil {
				return err
			}

			score := sentiment.ScoreText(text)
			if jsonOutput {
				return writeJSON(cmd, toExplainOutput(score))
			}

			out := cmd.OutOrStdout()
			if len(score.Matches) == 0 {
				fmt.Fprintln(out, "No lexicon words found.")
			} else {
				rows := make([][]string, 0, len(score.Matches))
				for i, m := range score.Matches {
					rows = append(rows, []string{strconv.Itoa(i + 1), m.Token, m.Polarity.String()})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Token", "Polarity"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			}
			_, err = fmt.Fprintf(out, "positive=%d negative=%d sentiment=%s\n", score.Positive, score.Negative, score.Classification())
			return err
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func toExplainOutput(score sentiment.Score) explainOutput {
	matches := make([]explainMatch, 0, len(score.Matches))
	for _, m := range score.Matches {
		matches = append(matches, explainMatch{Token: m.Token, Polarity: m.Polarity.String()})
	}
	return explainOutput{
		Sentiment: score.Classification().String(),
		Positive:  score.Positive,
		Negative:  score.Negative,
		Matches:   matches,
	}
}
