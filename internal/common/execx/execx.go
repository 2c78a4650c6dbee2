// Package execx wraps external command execution so callers can capture
// stdout while surfacing stderr in errors.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type cmdRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return cmdRunner{}
}

// Run executes name with args and returns its stdout. On failure the
// command's stderr is folded into the returned error.
func (cmdRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("command %q failed: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("command %q failed: %w", name, err)
	}
	return stdout.String(), nil
}
