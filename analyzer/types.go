package analyzer

import "codeinsight/structure"

// LintSeverity classifies a lint diagnostic by the kind pylint assigns to it.
type LintSeverity string

const (
	SeverityError      LintSeverity = "error"
	SeverityWarning    LintSeverity = "warning"
	SeverityConvention LintSeverity = "convention"
	SeverityRefactor   LintSeverity = "refactor"
	SeverityInfo       LintSeverity = "info"
)

// Request is the immutable input to one analysis run.
// FilePath is optional; when set, the source is written there before any
// path-based tool runs, so the tools see the same text the caller supplied.
type Request struct {
	Source   string
	FilePath string
}

// LintFinding is one normalized lint diagnostic.
type LintFinding struct {
	Severity LintSeverity `json:"severity"`
	Message  string       `json:"message"`
	Line     int          `json:"line"`
}

// SecurityFinding is one normalized security scanner diagnostic.
// Severity and Confidence are LOW, MEDIUM or HIGH.
type SecurityFinding struct {
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	Confidence string `json:"confidence"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
}

// FormattingVerdict is the outcome of a formatting check.
// Exactly one of Formatted/Err is populated when formatting was attempted;
// a formatter failure sets Err and forces NeedsFormatting to true.
type FormattingVerdict struct {
	NeedsFormatting bool   `json:"needs_formatting"`
	Formatted       string `json:"formatted_code,omitempty"`
	Err             string `json:"error,omitempty"`
}

// Result is the unified document produced by one analysis run. It is always
// complete: a failed sub-analysis is encoded in its error field, never as a
// missing section. LintError and SecurityError carry the note for an adapter
// that could not run at all.
type Result struct {
	Lint          []LintFinding     `json:"lint"`
	LintError     string            `json:"lint_error,omitempty"`
	Security      []SecurityFinding `json:"security"`
	SecurityError string            `json:"security_error,omitempty"`
	Formatting    FormattingVerdict `json:"formatting"`
	Structure     structure.Summary `json:"structure"`
}
