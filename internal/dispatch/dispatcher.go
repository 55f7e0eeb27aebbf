package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jkettner/fanout/internal/command"
	"github.com/jkettner/fanout/internal/log"
)

// job is one unclaimed input record on the worklist.
type job struct {
	index int
	input string
}

// Dispatcher fans input records out to a fixed-size pool of workers.
type Dispatcher struct {
	workers int
	runner  command.Runner
	logger  *slog.Logger
}

// New creates a Dispatcher with exactly workers concurrent execution slots.
// A worker count below one is a caller bug, rejected here before any dispatch.
func New(workers int, runner command.Runner) (*Dispatcher, error) {
	if workers < 1 {
		return nil, fmt.Errorf("dispatcher needs at least one worker, got %d", workers)
	}
	if runner == nil {
		return nil, fmt.Errorf("dispatcher needs a runner")
	}
	return &Dispatcher{
		workers: workers,
		runner:  runner,
		logger:  log.WithComponent("dispatch"),
	}, nil
}

// Run renders and executes every input exactly once and blocks until all
// invocations have completed, successfully or not. Invocation outcomes are
// logged and swallowed: a failing command is the command's problem, the
// remaining inputs are still dispatched and Run still returns normally.
func (d *Dispatcher) Run(ctx context.Context, tmpl *command.Template, inputs []string) {
	if len(inputs) == 0 {
		d.logger.Debug("no inputs, nothing to dispatch")
		return
	}

	runLogger := log.WithRun(uuid.NewString())
	runLogger.Info("dispatch started", "workers", d.workers, "inputs", len(inputs))

	// Fill and close the worklist up front. Workers race to drain it; the
	// channel is the only shared mutable state in the whole run.
	jobs := make(chan job, len(inputs))
	for i, in := range inputs {
		jobs <- job{index: i, input: in}
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			wl := runLogger.With("worker", worker)
			for j := range jobs {
				cmd := tmpl.Render(j.input)
				wl.Debug("will execute command", "index", j.index, "command", cmd)
				if err := d.runner.Run(ctx, cmd); err != nil {
					wl.Warn("command failed", "index", j.index, "command", cmd, "error", err)
				}
			}
		}(w)
	}
	wg.Wait()

	runLogger.Info("dispatch complete", "inputs", len(inputs))
}
