// Package analyzer aggregates lint, security, formatting and structural
// analysis of a Python source text into one unified result.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"codeinsight/structure"
)

// LintTool produces normalized lint findings for a source text, in the
// underlying tool's own order.
type LintTool interface {
	Lint(ctx context.Context, source, filePath string) ([]LintFinding, error)
}

// SecurityTool produces normalized security findings for a source text, in
// the underlying tool's own order.
type SecurityTool interface {
	Scan(ctx context.Context, source, filePath string) ([]SecurityFinding, error)
}

// FormatTool checks a source text against its canonical formatting.
type FormatTool interface {
	Check(ctx context.Context, source string) (FormattingVerdict, error)
}

// CodeAnalyzer runs every sub-analysis for one request and assembles the
// unified result. Sub-analyses are isolated: one tool failing does not stop
// the others, and its failure is encoded into the result as data.
type CodeAnalyzer struct {
	lint     LintTool
	security SecurityTool
	format   FormatTool
}

// New creates a code analyzer over the given tool adapters.
func New(lint LintTool, security SecurityTool, format FormatTool) *CodeAnalyzer {
	return &CodeAnalyzer{
		lint:     lint,
		security: security,
		format:   format,
	}
}

// Analyze performs one full analysis run. The returned result is complete
// even when individual tools fail; the only errors Analyze itself returns
// are an empty request and a failure to write an explicitly supplied file
// path. Findings from different tools are never merged or deduplicated.
func (ca *CodeAnalyzer) Analyze(ctx context.Context, req Request) (Result, error) {
	if req.Source == "" {
		return Result{}, errors.New("analysis request has no source text")
	}

	// Materialize the source once so every path-based tool sees the same
	// text the caller supplied. This is a plain overwrite.
	if req.FilePath != "" {
		if err := os.WriteFile(req.FilePath, []byte(req.Source), 0o644); err != nil {
			return Result{}, fmt.Errorf("failed to write source to %s: %w", req.FilePath, err)
		}
	}

	var res Result

	if findings, err := ca.lint.Lint(ctx, req.Source, req.FilePath); err != nil {
		res.LintError = err.Error()
	} else {
		res.Lint = findings
	}

	if findings, err := ca.security.Scan(ctx, req.Source, req.FilePath); err != nil {
		res.SecurityError = err.Error()
	} else {
		res.Security = findings
	}

	if verdict, err := ca.format.Check(ctx, req.Source); err != nil {
		res.Formatting = FormattingVerdict{NeedsFormatting: true, Err: err.Error()}
	} else {
		res.Formatting = verdict
	}

	res.Structure = structure.Inspect([]byte(req.Source))

	return res, nil
}
