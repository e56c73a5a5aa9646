package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/numcalc/internal/config"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the requested operations, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - tasks: The operations that will be executed.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, tasks []orchestration.Task, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	for _, t := range tasks {
		fmt.Fprintf(out, "Computing %s%s%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), t.Op.Describe(t.Req), ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if cfg.Parallelism > 0 {
		fmt.Fprintf(out, "Prime scan workers: %s%d%s.\n",
			ui.ColorCyan(), cfg.Parallelism, ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single operation vs full run).
//
// Parameters:
//   - tasks: The operations that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(tasks []orchestration.Task, out io.Writer) {
	var modeDesc string
	if len(tasks) > 1 {
		modeDesc = "Parallel run of all operations"
	} else {
		modeDesc = fmt.Sprintf("Single %s%s%s operation",
			ui.ColorGreen(), tasks[0].Op.Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
