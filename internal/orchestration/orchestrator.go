package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking operation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's OTel tracer.
const tracerName = "github.com/agbru/numcalc/internal/orchestration"

// ExecuteOperations orchestrates the concurrent execution of one or more
// numeric operations.
//
// It manages the lifecycle of the operation goroutines, collects their
// results, and coordinates the display of progress updates. Each operation
// runs under its own OTel span and is recorded in the Prometheus operation
// metrics.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - tasks: The operations to execute with their requests.
//   - opts: Operation tuning options.
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []OperationResult: A slice containing the results of each operation,
//     in task order.
func ExecuteOperations(ctx context.Context, tasks []Task, opts numeric.Options, progressReporter ProgressReporter, out io.Writer) []OperationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]OperationResult, len(tasks))
	progressChan := make(chan progress.Update, len(tasks)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(tasks), out)

	tracer := otel.Tracer(tracerName)

	for i, task := range tasks {
		idx, t := i, task
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, t.Op.Slug(), trace.WithAttributes(
				attribute.String("numcalc.operation", t.Op.Slug()),
				attribute.String("numcalc.request", t.Op.Describe(t.Req)),
			))

			report := progress.ChannelCallback(progressChan, idx)
			startTime := time.Now()
			value, err := t.Op.Compute(spanCtx, report, t.Req, opts)
			elapsed := time.Since(startTime)

			if err != nil {
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
			metrics.ObserveOperation(t.Op.Slug(), elapsed, err)

			results[idx] = OperationResult{
				Name: t.Op.Name(), Detail: t.Op.Describe(t.Req), Value: value, Duration: elapsed, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeResults processes the results from the executed operations and
// generates a summary report.
//
// It sorts the results so successes come first (fastest first within each
// group), displays the summary table, presents each successful result, and
// determines the process exit code from the first failure, if any.
//
// Parameters:
//   - results: The operation results to analyze.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []OperationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	var firstErrorDuration time.Duration
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
				firstErrorDuration = results[i].Duration
			}
		} else {
			successCount++
		}
	}

	if !opts.Quiet && len(results) > 1 {
		presenter.PresentSummaryTable(results, out)
	}

	for _, res := range results {
		if res.Err == nil {
			presenter.PresentResult(res, opts, out)
		}
	}

	if firstError != nil {
		if successCount == 0 && !opts.Quiet {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No operation could complete.\n")
		}
		return errHandler.HandleError(firstError, firstErrorDuration, out)
	}
	return apperrors.ExitSuccess
}
