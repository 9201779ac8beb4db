package tools

import (
	"testing"

	"codeinsight/analyzer"
)

func TestFormattingVerdict(t *testing.T) {
	canonical := "x = 1\n"
	sloppy := "x=1\n"

	tests := []struct {
		name   string
		source string
		stdout string
		stderr string
		code   int
		want   analyzer.FormattingVerdict
	}{
		{
			name:   "already canonical",
			source: canonical,
			stdout: canonical,
			want:   analyzer.FormattingVerdict{NeedsFormatting: false, Formatted: canonical},
		},
		{
			name:   "needs reformatting",
			source: sloppy,
			stdout: canonical,
			want:   analyzer.FormattingVerdict{NeedsFormatting: true, Formatted: canonical},
		},
		{
			name:   "formatter rejects input",
			source: "def f(:\n",
			stderr: "error: cannot format -: Cannot parse: 1:6: def f(:\n",
			code:   123,
			want: analyzer.FormattingVerdict{
				NeedsFormatting: true,
				Err:             "error: cannot format -: Cannot parse: 1:6: def f(:",
			},
		},
		{
			name:   "failure with silent stderr",
			source: canonical,
			code:   1,
			want:   analyzer.FormattingVerdict{NeedsFormatting: true, Err: "no error output"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formattingVerdict(tt.source, []byte(tt.stdout), tt.stderr, tt.code)
			if got != tt.want {
				t.Errorf("formattingVerdict = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Exactly one of Formatted/Err is populated whenever formatting was attempted.
func TestFormattingVerdict_ExclusiveFields(t *testing.T) {
	ok := formattingVerdict("x=1\n", []byte("x = 1\n"), "", 0)
	if ok.Formatted == "" || ok.Err != "" {
		t.Errorf("success verdict = %+v, want Formatted only", ok)
	}

	failed := formattingVerdict("def f(:\n", nil, "cannot parse", 123)
	if failed.Err == "" || failed.Formatted != "" {
		t.Errorf("failure verdict = %+v, want Err only", failed)
	}
	if !failed.NeedsFormatting {
		t.Error("failure verdict must force NeedsFormatting")
	}
}
