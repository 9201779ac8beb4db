package tools

import (
	"reflect"
	"testing"

	"codeinsight/analyzer"
)

func TestParsePylintOutput(t *testing.T) {
	data := []byte(`[
  {"type": "convention", "module": "snippet", "line": 1, "column": 0,
   "message": "Missing module docstring", "symbol": "missing-module-docstring", "message-id": "C0114"},
  {"type": "error", "module": "snippet", "line": 3, "column": 4,
   "message": "Undefined variable 'x'", "symbol": "undefined-variable", "message-id": "E0602"},
  {"type": "fatal", "module": "snippet", "line": 5, "column": 0,
   "message": "Parsing failed", "symbol": "syntax-error", "message-id": "F0001"}
]`)

	got, err := parsePylintOutput(data)
	if err != nil {
		t.Fatalf("parsePylintOutput returned error: %v", err)
	}

	want := []analyzer.LintFinding{
		{Severity: analyzer.SeverityConvention, Message: "Missing module docstring", Line: 1},
		{Severity: analyzer.SeverityError, Message: "Undefined variable 'x'", Line: 3},
		{Severity: analyzer.SeverityError, Message: "Parsing failed", Line: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findings = %+v, want %+v", got, want)
	}
}

func TestParsePylintOutput_Empty(t *testing.T) {
	got, err := parsePylintOutput([]byte("  \n"))
	if err != nil {
		t.Fatalf("parsePylintOutput returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("findings = %v, want none", got)
	}
}

func TestParsePylintOutput_Invalid(t *testing.T) {
	if _, err := parsePylintOutput([]byte("pylint exploded")); err == nil {
		t.Fatal("expected an error for non-JSON output")
	}
}

func TestLintSeverity(t *testing.T) {
	tests := []struct {
		kind string
		want analyzer.LintSeverity
	}{
		{"error", analyzer.SeverityError},
		{"fatal", analyzer.SeverityError},
		{"warning", analyzer.SeverityWarning},
		{"convention", analyzer.SeverityConvention},
		{"refactor", analyzer.SeverityRefactor},
		{"info", analyzer.SeverityInfo},
		{"something-new", analyzer.SeverityInfo},
	}

	for _, tt := range tests {
		if got := lintSeverity(tt.kind); got != tt.want {
			t.Errorf("lintSeverity(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
