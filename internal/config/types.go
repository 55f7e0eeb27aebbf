package config

import "fmt"

// Config is the fully resolved run configuration. Immutable once resolved;
// constructed exactly once per run.
type Config struct {
	// CommandTemplate is the raw template text, marker included.
	CommandTemplate string

	// Workers is the worker-pool size, always >= 1 after resolution.
	Workers int

	// File is the input file path. Empty means read stdin.
	File string

	// Stdin reports whether input comes from standard input.
	Stdin bool

	// LogLevel is the resolved diagnostic verbosity (DEBUG, INFO or WARN).
	LogLevel string

	// Shell is the shell binary used to execute substituted commands.
	Shell string
}

// Error is a fatal configuration problem detected before dispatch.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// Errorf builds an *Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}
