package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeinsight/analyzer"
	"codeinsight/config"
	"codeinsight/tools"
)

// setupRun applies the persistent flags and loads the configuration.
func setupRun(cmd *cobra.Command) (*config.Config, bool, error) {
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, false, err
	}

	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return nil, false, fmt.Errorf("invalid --color value %q (want auto, on or off)", colorMode)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, false, err
	}

	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, false, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, false, err
	}

	return cfg, quiet, nil
}

// readSource reads the source text for an analysis run. "-" reads stdin and
// yields no file path.
func readSource(arg string) (string, string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), arg, nil
}

// buildAnalyzer wires the configured tool adapters into a code analyzer.
func buildAnalyzer(cfg *config.Config) *analyzer.CodeAnalyzer {
	timeout := cfg.Tools.Timeout()

	return analyzer.New(
		tools.NewPylint(cfg.Tools.Pylint, timeout),
		tools.NewBandit(cfg.Tools.Bandit, timeout),
		tools.NewBlack(cfg.Tools.Black, timeout),
	)
}

// suggestionPolicy maps the configured thresholds onto a derivation policy.
func suggestionPolicy(cfg *config.Config) analyzer.Policy {
	return analyzer.Policy{
		MaxFunctions: cfg.Thresholds.MaxFunctions,
		MaxBranches:  cfg.Thresholds.MaxBranches,
	}
}
