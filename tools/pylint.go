package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"codeinsight/analyzer"
)

// stdinModuleName is the module name pylint reports for in-memory input.
const stdinModuleName = "codeinsight_input.py"

// Pylint invokes the pylint linter and normalizes its JSON diagnostics.
// It is a stateless value: every run decodes into fresh collections, so
// overlapping analysis runs never share reporter state.
type Pylint struct {
	Path    string
	Timeout time.Duration
}

// NewPylint builds a pylint adapter, resolving the default command name
// when no path is configured.
func NewPylint(path string, timeout time.Duration) Pylint {
	if path == "" {
		path = "pylint"
	}
	return Pylint{Path: path, Timeout: timeout}
}

// pylintMessage mirrors one entry of pylint's --output-format=json output.
type pylintMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Line    int    `json:"line"`
}

// Lint runs pylint over the request source, preserving the tool's own
// diagnostic ordering. With a file path the tool reads the file on disk;
// otherwise the source is piped through --from-stdin.
func (p Pylint) Lint(ctx context.Context, source, filePath string) ([]analyzer.LintFinding, error) {
	args := []string{"--output-format=json"}
	stdin := ""

	if filePath != "" {
		args = append(args, filePath)
	} else {
		args = append(args, "--from-stdin", stdinModuleName)
		stdin = source
	}

	stdout, stderr, code, err := runTool(ctx, p.Timeout, stdin, p.Path, args...)
	if err != nil {
		return nil, err
	}

	// Pylint encodes the kinds of diagnostics it found as exit code bits;
	// only the fatal bit (1) and usage errors (>=32) mean the run failed.
	if code&1 != 0 || code >= 32 {
		return nil, fmt.Errorf("pylint failed (exit %d): %s", code, firstLine(stderr))
	}

	return parsePylintOutput(stdout)
}

// parsePylintOutput decodes pylint JSON into normalized lint findings.
func parsePylintOutput(data []byte) ([]analyzer.LintFinding, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var messages []pylintMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse pylint output: %w", err)
	}

	findings := make([]analyzer.LintFinding, 0, len(messages))
	for _, msg := range messages {
		findings = append(findings, analyzer.LintFinding{
			Severity: lintSeverity(msg.Type),
			Message:  msg.Message,
			Line:     msg.Line,
		})
	}

	return findings, nil
}

// lintSeverity maps pylint's message type to the normalized severity kind.
// Fatal messages fold into error; unknown kinds fold into info.
func lintSeverity(kind string) analyzer.LintSeverity {
	switch kind {
	case "error", "fatal":
		return analyzer.SeverityError
	case "warning":
		return analyzer.SeverityWarning
	case "convention":
		return analyzer.SeverityConvention
	case "refactor":
		return analyzer.SeverityRefactor
	default:
		return analyzer.SeverityInfo
	}
}
