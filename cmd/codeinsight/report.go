package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeinsight/analyzer"
	"codeinsight/fileutil"
)

var reportCmd = &cobra.Command{
	Use:   "report [flags] <result.json>",
	Short: "Re-render a previously exported analysis result",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, quiet, err := setupRun(cmd)
	if err != nil {
		return err
	}

	var res analyzer.Result
	if err := fileutil.LoadJSONFile(args[0], &res); err != nil {
		return err
	}

	fmt.Println(analyzer.FormatReport(res))
	printSuggestions(suggestionPolicy(cfg).Derive(res), quiet)

	return nil
}
