package command

//go:generate mockgen -source=runner.go -destination=mocks/runner.go -package=mocks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "/bin/sh"

// Runner executes a fully substituted command string and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// ShellRunner runs commands through a shell. The child inherits the parent's
// stdout and stderr so command output goes where the user expects.
type ShellRunner struct {
	shell string
}

// NewShellRunner creates a ShellRunner. An empty shell selects DefaultShell.
func NewShellRunner(shell string) *ShellRunner {
	if shell == "" {
		shell = DefaultShell
	}
	return &ShellRunner{shell: shell}
}

// Run executes command via `<shell> -c` and blocks until it exits. A non-zero
// exit or launch failure is returned for the caller to log; it never escalates.
func (r *ShellRunner) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}
