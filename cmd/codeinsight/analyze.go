package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"codeinsight/analyzer"
	"codeinsight/fileutil"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file|->",
	Short: "Run the full analysis pipeline over a Python source",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "emit the raw result document as JSON")
	analyzeCmd.Flags().String("out", "", "write the JSON result to a file (implies --json)")
	analyzeCmd.Flags().Bool("write", false, "write the source back to its file before running path-based tools")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, quiet, err := setupRun(cmd)
	if err != nil {
		return err
	}

	source, path, err := readSource(args[0])
	if err != nil {
		return err
	}

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	if write && path == "" {
		return fmt.Errorf("--write requires a file argument, not stdin")
	}

	if path != "" && !fileutil.IsPythonFile(path) && !quiet {
		fmt.Fprintf(os.Stderr, "warning: %s does not look like a Python file\n", path)
	}

	req := analyzer.Request{Source: source}
	if write {
		req.FilePath = path
	}

	runID := uuid.NewString()
	if !quiet {
		target := path
		if target == "" {
			target = "<stdin>"
		}
		fmt.Fprintf(os.Stderr, "run %s: analyzing %s\n", runID, target)
	}

	res, err := buildAnalyzer(cfg).Analyze(cmd.Context(), req)
	if err != nil {
		return err
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	if jsonOut || outPath != "" {
		if outPath != "" {
			return fileutil.SaveJSONFile(outPath, res)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Println(analyzer.FormatReport(res))
	printSuggestions(suggestionPolicy(cfg).Derive(res), quiet)

	return nil
}

// printSuggestions renders the derived suggestion list after a report.
func printSuggestions(suggestions []string, quiet bool) {
	if len(suggestions) == 0 {
		if !quiet {
			fmt.Println("No suggestions.")
		}
		return
	}

	fmt.Println("Suggestions:")
	for i, s := range suggestions {
		fmt.Printf("%d. %s\n", i+1, s)
	}
}
