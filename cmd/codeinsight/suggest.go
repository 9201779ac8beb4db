package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeinsight/analyzer"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [flags] <file|->",
	Short: "Print only the derived improvement suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, quiet, err := setupRun(cmd)
	if err != nil {
		return err
	}

	source, _, err := readSource(args[0])
	if err != nil {
		return err
	}

	res, err := buildAnalyzer(cfg).Analyze(cmd.Context(), analyzer.Request{Source: source})
	if err != nil {
		return err
	}

	suggestions := suggestionPolicy(cfg).Derive(res)
	if len(suggestions) == 0 {
		if !quiet {
			fmt.Println("No suggestions.")
		}
		return nil
	}

	for i, s := range suggestions {
		fmt.Printf("%d. %s\n", i+1, s)
	}
	return nil
}
