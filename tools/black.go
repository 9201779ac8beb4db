package tools

import (
	"context"
	"time"

	"codeinsight/analyzer"
)

// Black checks whether a source text matches its canonical formatting by
// piping it through the black formatter.
type Black struct {
	Path    string
	Timeout time.Duration
}

// NewBlack builds a black adapter, resolving the default command name
// when no path is configured.
func NewBlack(path string, timeout time.Duration) Black {
	if path == "" {
		path = "black"
	}
	return Black{Path: path, Timeout: timeout}
}

// Check formats the source through black and compares the result against
// the input byte-for-byte. A formatter rejection (for example invalid
// syntax) is a verdict, not an error: "cannot determine" counts as "needs
// attention". The returned error covers only invocation failures.
func (bl Black) Check(ctx context.Context, source string) (analyzer.FormattingVerdict, error) {
	stdout, stderr, code, err := runTool(ctx, bl.Timeout, source, bl.Path, "--quiet", "-")
	if err != nil {
		return analyzer.FormattingVerdict{}, err
	}

	return formattingVerdict(source, stdout, stderr, code), nil
}

// formattingVerdict maps one black invocation onto a verdict. A non-zero
// exit records the rejection and forces NeedsFormatting; otherwise the
// formatted output is compared against the input byte-for-byte.
func formattingVerdict(source string, stdout []byte, stderr string, code int) analyzer.FormattingVerdict {
	if code != 0 {
		return analyzer.FormattingVerdict{
			NeedsFormatting: true,
			Err:             firstLine(stderr),
		}
	}

	formatted := string(stdout)
	return analyzer.FormattingVerdict{
		NeedsFormatting: formatted != source,
		Formatted:       formatted,
	}
}
