package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/progress"
	"github.com/agbru/numcalc/internal/ui"
)

// CLIColorProvider adapts the ui theme accessors to the error handler's
// ColorProvider interface.
type CLIColorProvider struct{}

// Red returns the ANSI code for error output.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the ANSI code for warning output.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the ANSI reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during operations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing operations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numOps int, out io.Writer) {
	DisplayProgress(wg, progressChan, numOps, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for operation results in the
// command-line interface.
type CLIResultPresenter struct {
	// Output configures quiet mode and file export for presented results.
	Output OutputConfig
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentSummaryTable displays the per-operation summary table with
// operation names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentSummaryTable(results []orchestration.OperationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")

	// Find the maximum operation name width for proper alignment
	maxNameLen := 9     // "Operation" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sOperation%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays one final operation result according to the
// configured output mode.
func (p CLIResultPresenter) PresentResult(result orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	cfg := p.Output
	cfg.Quiet = cfg.Quiet || opts.Quiet
	cfg.Verbose = cfg.Verbose || opts.Verbose
	if err := DisplayResultWithConfig(out, result, cfg); err != nil {
		fmt.Fprintf(out, "%sWarning: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	}
}

// HandleError handles operation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}
