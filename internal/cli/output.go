// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except raw values.
	Quiet bool
	// Verbose shows the full result value without truncation.
	Verbose bool
}

// WriteResultToFile writes an operation result to a file.
//
// Parameters:
//   - res: The completed operation result.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res orchestration.OperationResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	value := res.Value.String()

	// Write header
	fmt.Fprintf(file, "# Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Name)
	fmt.Fprintf(file, "# Request: %s\n", res.Detail)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Length: %d\n", len(value))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "%s =\n%s\n", res.Detail, value)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line raw value suitable for scripting.
func FormatQuietResult(res orchestration.OperationResult) string {
	return res.Value.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res orchestration.OperationResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult displays a single operation result with its duration.
// Long values are truncated to their leading and trailing digits unless
// verbose is set.
func DisplayResult(res orchestration.OperationResult, verbose bool, out io.Writer) {
	durationStr := format.FormatExecutionDuration(res.Duration)
	fmt.Fprintf(out, "\n%s%s%s (%s) completed in %s%s%s.\n",
		ui.ColorBlue(), res.Name, ui.ColorReset(),
		res.Detail,
		ui.ColorYellow(), durationStr, ui.ColorReset())

	value := res.Value.String()
	if !verbose && len(value) > TruncationLimit {
		fmt.Fprintf(out, "  %s = %s%s...%s%s (%d digits, truncated)\n",
			res.Detail, ui.ColorGreen(),
			value[:DisplayEdges], value[len(value)-DisplayEdges:],
			ui.ColorReset(), len(value))
		return
	}
	fmt.Fprintf(out, "  %s = %s%s%s\n", res.Detail, ui.ColorGreen(), value, ui.ColorReset())
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, res orchestration.OperationResult, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(res, config.Verbose, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
