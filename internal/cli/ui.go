//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/numcalc/internal/progress"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent operations.
// It maintains the individual progress of each operation and computes the
// average, providing a consolidated progress view when several operations run
// in parallel.
type ProgressState struct {
	progresses []float64
	numOps     int
}

// NewProgressState creates and initializes a new ProgressState for the
// specified number of operations.
func NewProgressState(numOps int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numOps),
		numOps:     numOps,
	}
}

// Update records a new progress value for a specific operation. Updates are
// only applied for valid operation indices.
//
// Parameters:
//   - index: The index of the operation (0 to numOps-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// operations, used to display a single consolidated progress bar.
func (ps *ProgressState) CalculateAverage() float64 {
	var totalProgress float64
	for _, p := range ps.progresses {
		totalProgress += p
	}
	if ps.numOps == 0 {
		return 0.0
	}
	return totalProgress / float64(ps.numOps)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders a spinner with an aggregated progress bar while
// operations are running. It consumes updates from progressChan until the
// channel is closed, refreshing the display at ProgressRefreshRate.
//
// Parameters:
//   - wg: Signals completion once the channel is drained.
//   - progressChan: Channel receiving progress updates from operations.
//   - numOps: The number of concurrent operations being tracked.
//   - out: The writer for the spinner output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	state := NewProgressState(numOps)
	sp.UpdateSuffix(fmt.Sprintf(" [%s] 0.0%%", progressBar(0, ProgressBarWidth)))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				sp.UpdateSuffix(fmt.Sprintf(" [%s] 100.0%%", progressBar(1.0, ProgressBarWidth)))
				return
			}
			state.Update(update.OperationIndex, update.Value)
		case <-ticker.C:
			avg := state.CalculateAverage()
			sp.UpdateSuffix(fmt.Sprintf(" [%s] %.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
		}
	}
}
