package main

import (
	"fmt"

	"github.com/pscheid92/reviewpulse/internal/sentiment"
	"github.com/spf13/cobra"
)

type classifyOutput struct {
	Sentiment string `json:"sentiment"`
}

func newClassifyCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Print the sentiment of a review",
		Long:  "Print positive, negative or neutral for the review given as arguments, or read from stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := reviewText(cmd, args)
			if err != nil {
				return err
			}

			label := sentiment.Classify(text)
			if jsonOutput {
				return writeJSON(cmd, classifyOutput{Sentiment: label.String()})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
