//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/progress"
)

// Task pairs an operation with the request it should run.
type Task struct {
	Op  numeric.Operation
	Req numeric.Request
}

// OperationResult encapsulates the outcome of a single operation run.
// It serves as the shared domain type between orchestration and presentation layers.
type OperationResult struct {
	// Name is the human-readable operation name (e.g., "Factorial").
	Name string
	// Detail describes the concrete request (e.g., "5!").
	Detail string
	// Value is the computed result. It is nil if an error occurred.
	Value numeric.Value
	// Duration is the time taken to complete the operation.
	Duration time.Duration
	// Err contains any error that occurred during the operation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Quiet   bool
}

// ProgressReporter defines the interface for displaying operation progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, progress
// bar) while orchestration focuses on coordinating the operations.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from operations.
	//   - numOps: The number of concurrent operations being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, out io.Writer) {
	f(wg, progressChan, numOps, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting operation results,
// allowing different output formats (CLI, TUI) without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentSummaryTable displays the per-operation summary table.
	PresentSummaryTable(results []OperationResult, out io.Writer)

	// PresentResult displays one final operation result.
	PresentResult(result OperationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles operation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
