package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeDefaults(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	t.Setenv("FANOUT_CONFIG", path)
}

func TestResolve_DefaultsFile(t *testing.T) {
	writeDefaults(t, "threads: 3\nlog_level: DEBUG\nshell: /bin/bash\n")

	cfg, err := Resolve([]string{"echo", "{}"})
	assert.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "/bin/bash", cfg.Shell)
}

func TestResolve_FlagsWinOverDefaultsFile(t *testing.T) {
	writeDefaults(t, "threads: 3\nlog_level: DEBUG\n")

	cfg, err := Resolve([]string{"-t", "9", "--verbose", "echo", "{}"})
	assert.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestResolve_DefaultsFileUnparseable(t *testing.T) {
	writeDefaults(t, "threads: [not a number\n")

	cfg, err := Resolve([]string{"echo", "{}"})
	assert.Nil(t, cfg)
	assert.Error(t, err)

	var cfgErr *Error
	assert.True(t, errors.As(err, &cfgErr))
}

func TestResolve_DefaultsFileNegativeThreads(t *testing.T) {
	writeDefaults(t, "threads: -1\n")

	cfg, err := Resolve([]string{"echo", "{}"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadDefaults_MissingFileIsFine(t *testing.T) {
	t.Setenv("FANOUT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	d, err := loadDefaults()
	assert.NoError(t, err)
	assert.Zero(t, d.Threads)
	assert.Empty(t, d.LogLevel)
}
