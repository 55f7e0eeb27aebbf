package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileDefaults are the optional YAML defaults. Flags always win over the file.
type fileDefaults struct {
	Threads  int    `yaml:"threads"`
	LogLevel string `yaml:"log_level"`
	Shell    string `yaml:"shell"`
}

// defaultsPath finds the defaults file.
// Priority order: $FANOUT_CONFIG, ~/.config/fanout/config.yaml.
func defaultsPath() string {
	if p := os.Getenv("FANOUT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fanout", "config.yaml")
}

// loadDefaults reads the defaults file if one exists. A missing file is fine;
// an unreadable or unparseable one is a configuration error.
func loadDefaults() (fileDefaults, error) {
	var d fileDefaults

	path := defaultsPath()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return d, Errorf("read defaults file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, Errorf("parse defaults file %s: %v", path, err)
	}
	if d.Threads < 0 {
		return d, Errorf("defaults file %s: invalid threads value %d", path, d.Threads)
	}
	return d, nil
}
