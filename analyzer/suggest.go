package analyzer

import "fmt"

const (
	formattingAdvice = "Code formatting: Consider using Black to format your code"
	modularityAdvice = "Consider breaking down the code into smaller modules"
	complexityAdvice = "High cyclomatic complexity detected. Consider simplifying the logic"
)

// Policy holds the structural advisory thresholds.
type Policy struct {
	MaxFunctions int
	MaxBranches  int
}

// DefaultPolicy returns the stock advisory thresholds.
func DefaultPolicy() Policy {
	return Policy{MaxFunctions: 10, MaxBranches: 5}
}

// Derive produces the suggestion list using the default policy.
func Derive(res Result) []string {
	return DefaultPolicy().Derive(res)
}

// Derive produces human-readable improvement suggestions from a result.
// The four rule groups run in fixed order and are concatenated, so the list
// is prioritized by construction: lint errors and warnings, then HIGH and
// MEDIUM security findings, then the formatting advisory, then structural
// advisories. Convention, refactor and info lint findings and LOW security
// findings never produce suggestions, and structural advisories are skipped
// entirely when the source did not parse.
func (p Policy) Derive(res Result) []string {
	var suggestions []string

	for _, f := range res.Lint {
		if f.Severity == SeverityError || f.Severity == SeverityWarning {
			suggestions = append(suggestions,
				fmt.Sprintf("Pylint %s: %s (line %d)", f.Severity, f.Message, f.Line))
		}
	}

	for _, f := range res.Security {
		if f.Severity == "HIGH" || f.Severity == "MEDIUM" {
			suggestions = append(suggestions,
				fmt.Sprintf("Security issue (%s): %s (line %d, confidence: %s)",
					f.Severity, f.Message, f.Line, f.Confidence))
		}
	}

	if res.Formatting.NeedsFormatting {
		suggestions = append(suggestions, formattingAdvice)
	}

	if res.Structure.ParseError == "" {
		if res.Structure.Complexity.Functions > p.MaxFunctions {
			suggestions = append(suggestions, modularityAdvice)
		}
		if res.Structure.Complexity.Branches > p.MaxBranches {
			suggestions = append(suggestions, complexityAdvice)
		}
	}

	return suggestions
}
