package analyzer

import (
	"strings"
	"testing"

	"codeinsight/structure"
)

func TestDerive_CleanResult(t *testing.T) {
	res := Result{
		Structure: structure.Summary{
			Imports:    []string{"os"},
			Functions:  []structure.FunctionInfo{{Name: "f", Parameters: []string{"a", "b"}, Line: 2}},
			Complexity: structure.Complexity{Functions: 1},
		},
	}

	if got := Derive(res); len(got) != 0 {
		t.Errorf("Derive = %v, want no suggestions for a clean result", got)
	}
}

func TestDerive_LintSeverityFilter(t *testing.T) {
	tests := []struct {
		severity LintSeverity
		want     bool
	}{
		{SeverityError, true},
		{SeverityWarning, true},
		{SeverityConvention, false},
		{SeverityRefactor, false},
		{SeverityInfo, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			res := Result{Lint: []LintFinding{{Severity: tt.severity, Message: "something", Line: 3}}}
			got := Derive(res)

			if tt.want && len(got) != 1 {
				t.Fatalf("Derive = %v, want one suggestion", got)
			}
			if !tt.want && len(got) != 0 {
				t.Fatalf("Derive = %v, want none for %s findings", got, tt.severity)
			}
			if tt.want {
				want := "Pylint " + string(tt.severity) + ": something (line 3)"
				if got[0] != want {
					t.Errorf("suggestion = %q, want %q", got[0], want)
				}
			}
		})
	}
}

func TestDerive_SecuritySeverityFilter(t *testing.T) {
	res := Result{Security: []SecurityFinding{
		{Message: "exec use", Severity: "HIGH", Confidence: "MEDIUM", Line: 4},
		{Message: "assert use", Severity: "LOW", Confidence: "HIGH", Line: 9},
	}}

	got := Derive(res)
	if len(got) != 1 {
		t.Fatalf("Derive = %v, want exactly one suggestion (HIGH only)", got)
	}
	want := "Security issue (HIGH): exec use (line 4, confidence: MEDIUM)"
	if got[0] != want {
		t.Errorf("suggestion = %q, want %q", got[0], want)
	}
}

func TestDerive_FormattingAdvisory(t *testing.T) {
	with := Result{Formatting: FormattingVerdict{NeedsFormatting: true}}
	without := Result{Formatting: FormattingVerdict{NeedsFormatting: false}}

	if got := Derive(with); len(got) != 1 || got[0] != formattingAdvice {
		t.Errorf("Derive = %v, want only the formatting advisory", got)
	}
	if got := Derive(without); len(got) != 0 {
		t.Errorf("Derive = %v, want none when formatting is clean", got)
	}
}

func TestDerive_ModularityAdvisoryOnce(t *testing.T) {
	functions := make([]structure.FunctionInfo, 11)
	for i := range functions {
		functions[i] = structure.FunctionInfo{Name: "f", Line: i + 1}
	}
	res := Result{Structure: structure.Summary{
		Functions:  functions,
		Complexity: structure.Complexity{Functions: 11},
	}}

	got := Derive(res)

	count := 0
	for _, s := range got {
		if s == modularityAdvice {
			count++
		}
	}
	if count != 1 {
		t.Errorf("modularity advisory appeared %d times in %v, want exactly once", count, got)
	}
}

func TestDerive_ComplexityAdvisory(t *testing.T) {
	res := Result{Structure: structure.Summary{
		Complexity: structure.Complexity{Branches: 6},
	}}

	got := Derive(res)
	if len(got) != 1 || got[0] != complexityAdvice {
		t.Errorf("Derive = %v, want only the high complexity advisory", got)
	}
}

func TestDerive_ParseErrorSkipsStructuralAdvisories(t *testing.T) {
	res := Result{
		Lint: []LintFinding{{Severity: SeverityError, Message: "bad", Line: 1}},
		Structure: structure.Summary{
			ParseError: "syntax error near line 1",
		},
	}
	// Counters can never exceed thresholds on a parse failure, but guard the
	// rule itself: structural advisories are skipped entirely.
	res.Structure.Complexity = structure.Complexity{Functions: 99, Branches: 99}

	got := Derive(res)
	for _, s := range got {
		if s == modularityAdvice || s == complexityAdvice {
			t.Errorf("structural advisory %q emitted despite parse error", s)
		}
	}
	if len(got) != 1 {
		t.Errorf("Derive = %v, want only the lint suggestion", got)
	}
}

func TestDerive_GroupOrder(t *testing.T) {
	res := Result{
		Lint:       []LintFinding{{Severity: SeverityWarning, Message: "w", Line: 1}},
		Security:   []SecurityFinding{{Message: "s", Severity: "MEDIUM", Confidence: "LOW", Line: 2}},
		Formatting: FormattingVerdict{NeedsFormatting: true},
		Structure: structure.Summary{
			Complexity: structure.Complexity{Functions: 11, Branches: 6},
		},
	}

	got := Derive(res)
	if len(got) != 5 {
		t.Fatalf("Derive = %v, want five suggestions", got)
	}

	checks := []string{"Pylint", "Security issue", "Code formatting", "breaking down", "complexity"}
	for i, fragment := range checks {
		if !strings.Contains(got[i], fragment) {
			t.Errorf("suggestion %d = %q, want it to contain %q", i, got[i], fragment)
		}
	}
}

func TestDerive_CustomPolicy(t *testing.T) {
	res := Result{Structure: structure.Summary{
		Complexity: structure.Complexity{Functions: 3, Branches: 2},
	}}

	got := Policy{MaxFunctions: 2, MaxBranches: 1}.Derive(res)
	if len(got) != 2 {
		t.Errorf("Derive = %v, want both structural advisories under a tight policy", got)
	}
}
