package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "codeinsight",
	Short: "Static analysis toolkit for Python sources",
	Long: `codeinsight runs pylint, bandit and black over a Python source file,
adds a structural inspection pass, and renders the aggregated results
as a report and a prioritized suggestion list.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether a file is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
