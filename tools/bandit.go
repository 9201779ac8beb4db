package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"codeinsight/analyzer"
	"codeinsight/fileutil"
)

// Bandit invokes the bandit security scanner and normalizes its JSON report.
type Bandit struct {
	Path    string
	Timeout time.Duration
}

// NewBandit builds a bandit adapter, resolving the default command name
// when no path is configured.
func NewBandit(path string, timeout time.Duration) Bandit {
	if path == "" {
		path = "bandit"
	}
	return Bandit{Path: path, Timeout: timeout}
}

// banditReport mirrors the top level of bandit's -f json output.
type banditReport struct {
	Results []banditIssue `json:"results"`
	Errors  []banditError `json:"errors"`
}

type banditIssue struct {
	Text       string `json:"issue_text"`
	Severity   string `json:"issue_severity"`
	Confidence string `json:"issue_confidence"`
	Line       int    `json:"line_number"`
	Column     int    `json:"col_offset"`
}

type banditError struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Scan runs bandit over the request source, preserving the tool's native
// finding order. Without a file path the source is materialized as a single
// temporary file so the scan covers exactly one virtual file.
func (b Bandit) Scan(ctx context.Context, source, filePath string) ([]analyzer.SecurityFinding, error) {
	target := filePath

	if target == "" {
		tmp, err := fileutil.SaveToTempFile(source, ".py")
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp)
		target = tmp
	}

	// --exit-zero keeps findings out of the exit code, so any non-zero exit
	// is a real invocation failure.
	stdout, stderr, code, err := runTool(ctx, b.Timeout, "", b.Path, "--exit-zero", "-q", "-f", "json", target)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("bandit failed (exit %d): %s", code, firstLine(stderr))
	}

	return parseBanditOutput(stdout)
}

// parseBanditOutput decodes a bandit JSON report into normalized findings.
func parseBanditOutput(data []byte) ([]analyzer.SecurityFinding, error) {
	var report banditReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse bandit output: %w", err)
	}

	if len(report.Errors) > 0 {
		return nil, fmt.Errorf("bandit could not scan %s: %s", report.Errors[0].Filename, report.Errors[0].Reason)
	}

	findings := make([]analyzer.SecurityFinding, 0, len(report.Results))
	for _, issue := range report.Results {
		findings = append(findings, analyzer.SecurityFinding{
			Message:    issue.Text,
			Severity:   strings.ToUpper(issue.Severity),
			Confidence: strings.ToUpper(issue.Confidence),
			Line:       issue.Line,
			Column:     issue.Column,
		})
	}

	return findings, nil
}
