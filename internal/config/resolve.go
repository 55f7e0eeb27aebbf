package config

import (
	"errors"
	"flag"
	"io"
	"runtime"
	"strings"

	"github.com/jkettner/fanout/internal/command"
)

// Resolve parses args into a validated Config. It never dispatches anything:
// all failures here happen before a single worker exists. A -h/--help request
// is surfaced as flag.ErrHelp for the caller to handle.
func Resolve(args []string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	var (
		threads        int
		file           string
		debug, verbose bool
	)

	fs := flag.NewFlagSet("fanout", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // diagnostics are the caller's job
	fs.IntVar(&threads, "t", 0, "number of worker threads (default: autodetect)")
	fs.IntVar(&threads, "threads", 0, "number of worker threads (default: autodetect)")
	fs.StringVar(&file, "f", "", "read inputs from file instead of stdin")
	fs.StringVar(&file, "file", "", "read inputs from file instead of stdin")
	fs.BoolVar(&debug, "d", false, "set log level to debug")
	fs.BoolVar(&debug, "debug", false, "set log level to debug")
	fs.BoolVar(&verbose, "verbose", false, "set log level to info")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, Errorf("%v", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if debug && verbose {
		return nil, Errorf("you cannot specify both debug and verbose output levels")
	}
	level := defaults.LogLevel
	switch {
	case debug:
		level = "DEBUG"
	case verbose:
		level = "INFO"
	case level == "":
		level = "WARN"
	}

	workers, err := resolveWorkers(threads, set["t"] || set["threads"], defaults.Threads)
	if err != nil {
		return nil, err
	}

	tmpl := strings.Join(fs.Args(), " ")
	if tmpl == "" {
		return nil, Errorf("no command template given")
	}
	if _, err := command.New(tmpl); err != nil {
		return nil, Errorf("%v", err)
	}

	return &Config{
		CommandTemplate: tmpl,
		Workers:         workers,
		File:            file,
		Stdin:           file == "",
		LogLevel:        level,
		Shell:           defaults.Shell,
	}, nil
}

// resolveWorkers applies the precedence flag > defaults file > autodetect.
// An explicit value below one is always fatal; so is an unresolvable
// autodetection (cannot happen with the Go runtime, checked anyway).
func resolveWorkers(flagValue int, flagSet bool, fileValue int) (int, error) {
	if flagSet {
		if flagValue < 1 {
			return 0, Errorf("invalid number of threads specified: %d, need 1 or more", flagValue)
		}
		return flagValue, nil
	}
	if fileValue > 0 {
		return fileValue, nil
	}
	n := runtime.NumCPU()
	if n < 1 {
		return 0, Errorf("unable to auto-detect processor count")
	}
	return n, nil
}
