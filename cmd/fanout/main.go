package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jkettner/fanout/internal/command"
	"github.com/jkettner/fanout/internal/config"
	"github.com/jkettner/fanout/internal/dispatch"
	"github.com/jkettner/fanout/internal/input"
	"github.com/jkettner/fanout/internal/log"
)

const version = "0.2.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run resolves configuration, acquires inputs, and drives the dispatch engine.
// Exit status reflects configuration-time failures only; child-command
// failures surface through per-invocation logging, never the exit code.
func run(args []string) int {
	if len(args) > 0 && (args[0] == "version" || args[0] == "--version") {
		fmt.Printf("fanout version %s\n", version)
		return 0
	}

	cfg, err := config.Resolve(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "fanout: %v\n", err)
		return 1
	}

	log.Setup(cfg.LogLevel)
	logger := log.WithComponent("main")

	var inputs []string
	if cfg.Stdin {
		logger.Debug("no file specified, reading inputs from stdin")
		inputs, err = input.Read(os.Stdin)
	} else {
		logger.Debug("reading inputs from file", "file", cfg.File)
		inputs, err = input.ReadFile(cfg.File)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fanout: %v\n", err)
		return 1
	}
	logger.Info("got input", "lines", len(inputs))

	tmpl, err := command.New(cfg.CommandTemplate)
	if err != nil {
		// Resolve already validated the marker; kept as a backstop.
		fmt.Fprintf(os.Stderr, "fanout: %v\n", err)
		return 1
	}

	disp, err := dispatch.New(cfg.Workers, command.NewShellRunner(cfg.Shell))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fanout: %v\n", err)
		return 1
	}
	logger.Info("created worker pool", "workers", cfg.Workers)

	disp.Run(context.Background(), tmpl, inputs)
	return 0
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, `fanout - run a templated shell command once per input line, in parallel

Usage:
  fanout [flags] <command template containing %s>

The placeholder %s is replaced with each input line, verbatim and unquoted.
Inputs are read one per line from stdin, or from a file with -f.

Flags:
  -t, --threads N   number of worker threads (default: autodetect)
  -f, --file PATH   read inputs from PATH instead of stdin
  -d, --debug       set log level to debug
      --verbose     set log level to info
      --version     show version information
  -h, --help        show this help message

Defaults file (optional): $FANOUT_CONFIG or ~/.config/fanout/config.yaml
may set threads, log_level and shell. Flags win over the file.

Examples:
  cat urls.txt | fanout -t 8 'curl -sO {}'
  fanout -f hosts.txt 'ping -c1 {}'
`, command.Marker, command.Marker)
}
