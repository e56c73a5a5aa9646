package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/progress"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards aggregated updates as
// bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, _ io.Writer) {
	defer wg.Done()

	if numOps <= 0 {
		for range progressChan {
		}
		return
	}

	progresses := make([]float64, numOps)
	for update := range progressChan {
		if update.OperationIndex >= 0 && update.OperationIndex < numOps {
			progresses[update.OperationIndex] = update.Value
		}
		var sum float64
		for _, p := range progresses {
			sum += p
		}
		t.ref.Send(ProgressMsg{
			OperationIndex:  update.OperationIndex,
			Value:           update.Value,
			AverageProgress: sum / float64(numOps),
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler    = (*TUIResultPresenter)(nil)
)

// PresentSummaryTable sends the run summary to the TUI.
func (t *TUIResultPresenter) PresentSummaryTable(results []orchestration.OperationResult, _ io.Writer) {
	t.ref.Send(SummaryMsg{Results: results})
}

// PresentResult sends one final result to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.OperationResult, opts orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result, Verbose: opts.Verbose})
}

// plainColors satisfies the error handler's ColorProvider without emitting
// ANSI codes; the TUI renders errors through lipgloss styles instead.
type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleCalculationError(err, duration, io.Discard, plainColors{})
}
