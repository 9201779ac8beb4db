// Package tools wraps the external analysis tools (pylint, bandit, black)
// behind adapters that normalize each tool's native output into the records
// of the analyzer package.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// runTool executes an external tool under a deadline and returns its stdout,
// stderr and exit code. The error is non-nil only when the tool could not be
// run at all (missing binary, timeout); a non-zero exit is reported through
// the code so callers can apply tool-specific exit conventions.
func runTool(ctx context.Context, timeout time.Duration, stdin, name string, args ...string) ([]byte, string, int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, "", 0, fmt.Errorf("%s timed out after %s", name, timeout)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return stdout.Bytes(), stderr.String(), exitErr.ExitCode(), nil
		}
		return nil, stderr.String(), 0, fmt.Errorf("failed to run %s: %w", name, runErr)
	}

	return stdout.Bytes(), stderr.String(), 0, nil
}

// firstLine returns the first non-empty line of a tool's stderr, for use in
// error messages.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return "no error output"
}
