package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/numcalc/internal/cli"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/progress"
)

// Demonstration inputs: factorial of 5, primality of 29, and the first ten
// Fibonacci numbers.
const (
	demoFactorialN = 5
	demoPrimeN     = 29
	demoSequenceN  = 10
)

// runDemo executes the fixed demonstration and prints its three lines.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	factorial, err := numeric.Factorial(ctx, demoFactorialN, progress.NoOp)
	if err != nil {
		return a.demoError(err)
	}
	fmt.Fprintf(out, "The factorial of %d is %s\n", demoFactorialN, factorial)

	verdict := numeric.BoolValue{Bool: numeric.IsPrime(demoPrimeN)}
	fmt.Fprintf(out, "Is %d a prime number? %s\n", demoPrimeN, verdict.YesNo())

	seq, err := numeric.Sequence(ctx, demoSequenceN, progress.NoOp)
	if err != nil {
		return a.demoError(err)
	}
	fmt.Fprintf(out, "The first %d numbers in the Fibonacci sequence are: %s\n",
		demoSequenceN, numeric.SeqValue{Seq: seq})

	return apperrors.ExitSuccess
}

func (a *Application) demoError(err error) int {
	return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
}

// demoTasks returns the demonstration trio as orchestration tasks, used when
// an execution mode is requested without a specific operation.
func (a *Application) demoTasks() []orchestration.Task {
	var tasks []orchestration.Task
	for _, d := range []struct {
		slug string
		n    uint64
	}{
		{"fact", demoFactorialN},
		{"prime", demoPrimeN},
		{"fib", demoSequenceN},
	} {
		if op, ok := a.Factory.Get(d.slug); ok {
			tasks = append(tasks, orchestration.Task{Op: op, Req: numeric.Request{N: d.n}})
		}
	}
	return tasks
}

// buildTasks resolves the configured operation selection into tasks.
func (a *Application) buildTasks() ([]orchestration.Task, error) {
	cfg := a.Config

	if cfg.Op == "" {
		return a.demoTasks(), nil
	}

	request := func(op numeric.Operation) numeric.Request {
		if op.Slug() == "primes" {
			lo, hi := cfg.Lo, cfg.Hi
			if hi == 0 {
				// No explicit range: scan up to the shared argument.
				hi = cfg.N
			}
			return numeric.Request{Lo: lo, Hi: hi}
		}
		return numeric.Request{N: cfg.N}
	}

	if cfg.Op == "all" {
		ops := a.Factory.GetAll()
		tasks := make([]orchestration.Task, 0, len(ops))
		for _, op := range ops {
			tasks = append(tasks, orchestration.Task{Op: op, Req: request(op)})
		}
		return tasks, nil
	}

	op, ok := a.Factory.Get(cfg.Op)
	if !ok {
		return nil, apperrors.NewConfigError("unknown operation %q", cfg.Op)
	}
	return []orchestration.Task{{Op: op, Req: request(op)}}, nil
}

// runCompute orchestrates the execution of the requested operations.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	tasks, err := a.buildTasks()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, tasks, out)
		cli.PrintExecutionMode(tasks, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	memBefore := metrics.NewMemoryCollector().Snapshot()

	results := orchestration.ExecuteOperations(ctx, tasks, a.Config.ToOptions(), progressReporter, progressOut)

	presenter := cli.CLIResultPresenter{Output: cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}}
	presOpts := orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeResults(results, presOpts, presenter, presenter, out)

	if a.Config.Verbose && !a.Config.Quiet {
		memAfter := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(
			memAfter.HeapAlloc,
			memAfter.TotalAlloc-memBefore.TotalAlloc,
			memAfter.NumGC-memBefore.NumGC,
			memAfter.PauseTotalNs-memBefore.PauseTotalNs,
			out)
	}

	return exitCode
}
