package analyzer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"codeinsight/structure"
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// FormatReport renders a result into a display-ready text report with four
// labeled sections in fixed order: lint, security, formatting, structure.
// A section is omitted only when it has nothing to show. The output is a
// pure function of the result and the global color mode.
func FormatReport(res Result) string {
	var sections []string

	if s := lintSection(res); s != "" {
		sections = append(sections, s)
	}
	if s := securitySection(res); s != "" {
		sections = append(sections, s)
	}
	if s := formattingSection(res.Formatting); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, structureSection(res.Structure))

	return strings.Join(sections, "\n")
}

func header(title string) string {
	return sectionColor.Sprintf("=== %s ===", title)
}

func lintSection(res Result) string {
	if len(res.Lint) == 0 && res.LintError == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, header("Pylint Analysis"))

	if res.LintError != "" {
		fmt.Fprintf(&b, "Pylint could not run: %s\n", res.LintError)
	}
	for _, f := range res.Lint {
		fmt.Fprintf(&b, "[%s] Line %d: %s\n", lintTag(f.Severity), f.Line, f.Message)
	}

	return b.String()
}

func lintTag(kind LintSeverity) string {
	tag := strings.ToUpper(string(kind))
	switch kind {
	case SeverityError:
		return errorColor.Sprint(tag)
	case SeverityWarning:
		return warnColor.Sprint(tag)
	default:
		return tag
	}
}

func securitySection(res Result) string {
	if len(res.Security) == 0 && res.SecurityError == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, header("Security Analysis (Bandit)"))

	if res.SecurityError != "" {
		fmt.Fprintf(&b, "Bandit could not run: %s\n", res.SecurityError)
	}
	for _, f := range res.Security {
		fmt.Fprintf(&b, "[%s] Line %d: %s (Confidence: %s)\n",
			securityTag(f.Severity), f.Line, f.Message, f.Confidence)
	}

	return b.String()
}

func securityTag(severity string) string {
	switch severity {
	case "HIGH":
		return errorColor.Sprint(severity)
	case "MEDIUM":
		return warnColor.Sprint(severity)
	default:
		return severity
	}
}

func formattingSection(verdict FormattingVerdict) string {
	if !verdict.NeedsFormatting && verdict.Err == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, header("Code Formatting (Black)"))

	if verdict.NeedsFormatting {
		fmt.Fprintln(&b, "Code needs formatting. Consider using Black to format the code.")
	}
	if verdict.Err != "" {
		fmt.Fprintf(&b, "Error during formatting check: %s\n", verdict.Err)
	}

	return b.String()
}

func structureSection(summary structure.Summary) string {
	var b strings.Builder
	fmt.Fprintln(&b, header("Code Structure Analysis"))

	if summary.ParseError != "" {
		fmt.Fprintf(&b, "Parse error: %s\n", summary.ParseError)
		return b.String()
	}

	fmt.Fprintf(&b, "Functions: %d\n", summary.Complexity.Functions)
	fmt.Fprintf(&b, "Classes: %d\n", summary.Complexity.Classes)
	fmt.Fprintf(&b, "Branches: %d\n", summary.Complexity.Branches)
	fmt.Fprintf(&b, "Loops: %d\n", summary.Complexity.Loops)

	if len(summary.Imports) > 0 {
		fmt.Fprintln(&b, "\nImports:")
		for _, imp := range summary.Imports {
			fmt.Fprintf(&b, "  - %s\n", imp)
		}
	}

	if len(summary.Functions) > 0 {
		fmt.Fprintln(&b, "\nFunctions:")
		for _, fn := range summary.Functions {
			fmt.Fprintf(&b, "  - %s(%s)\n", fn.Name, strings.Join(fn.Parameters, ", "))
		}
	}

	if len(summary.Classes) > 0 {
		fmt.Fprintln(&b, "\nClasses:")
		for _, cls := range summary.Classes {
			fmt.Fprintf(&b, "  - %s\n", cls.Name)
			for _, method := range cls.Methods {
				fmt.Fprintf(&b, "    * %s\n", method)
			}
		}
	}

	return b.String()
}
