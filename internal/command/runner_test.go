package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShellRunner_DefaultShell(t *testing.T) {
	r := NewShellRunner("")
	assert.Equal(t, DefaultShell, r.shell)

	r = NewShellRunner("/bin/bash")
	assert.Equal(t, "/bin/bash", r.shell)
}

func TestShellRunner_Run(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "made-by-run")

	r := NewShellRunner("")
	err := r.Run(context.Background(), fmt.Sprintf("touch %s", target))
	assert.NoError(t, err)

	_, err = os.Stat(target)
	assert.NoError(t, err, "command should have created the file")
}

func TestShellRunner_Run_NonZeroExit(t *testing.T) {
	r := NewShellRunner("")
	err := r.Run(context.Background(), "exit 3")
	assert.Error(t, err)
}

func TestShellRunner_Run_LaunchFailure(t *testing.T) {
	r := NewShellRunner("/nonexistent/shell")
	err := r.Run(context.Background(), "true")
	assert.Error(t, err)
}
