// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive integer calculations.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/progress"
	"github.com/agbru/numcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration for each calculation.
	Timeout time.Duration
	// Parallelism bounds the prime-scan workers.
	Parallelism int
}

// REPL represents an interactive calculator session.
type REPL struct {
	config  REPLConfig
	factory numeric.OperationFactory
	in      io.Reader
	out     io.Writer

	// defaultOp is the operation a bare number runs, settable with "use".
	defaultOp string
}

// NewREPL creates a new REPL instance backed by the given operation registry.
func NewREPL(factory numeric.OperationFactory, config REPLConfig) *REPL {
	return &REPL{
		config:    config,
		factory:   factory,
		in:        os.Stdin,
		out:       os.Stdout,
		defaultOp: "fibterm",
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"num> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Number Calculator - Interactive Mode%s               %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfact <n>%s         - Calculate n!\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sprime <n>%s        - Test whether n is prime\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfib <n>%s          - Generate the first n Fibonacci numbers\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sterm <n>%s         - Calculate the Fibonacci term F(n)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sprimes <lo> <hi>%s - Count primes in [lo, hi]\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %suse <op>%s         - Set the operation a bare number runs\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s             - List available operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "fact", "f":
		r.cmdSingle("fact", args)
	case "prime", "p":
		r.cmdSingle("prime", args)
	case "fib":
		r.cmdSingle("fib", args)
	case "term", "t", "fibterm":
		r.cmdSingle("fibterm", args)
	case "primes", "scan":
		r.cmdScan(args)
	case "use", "default":
		r.cmdUse(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// A bare number runs the current default operation
		if n, err := numeric.ParseIndex("n", cmd); err == nil {
			r.run(r.defaultOp, numeric.Request{N: n})
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdSingle handles the single-argument operation commands.
func (r *REPL) cmdSingle(slug string, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s <n>%s\n", ui.ColorRed(), slug, ui.ColorReset())
		return
	}

	n, err := numeric.ParseIndex("n", args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.run(slug, numeric.Request{N: n})
}

// cmdScan handles the "primes" range command.
func (r *REPL) cmdScan(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(r.out, "%sUsage: primes <lo> <hi>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	lo, err := numeric.ParseIndex("lo", args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	hi, err := numeric.ParseIndex("hi", args[1])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
		return
	}

	r.run("primes", numeric.Request{Lo: lo, Hi: hi})
}

// cmdUse changes the default operation for bare-number input.
func (r *REPL) cmdUse(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: use <op>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	slug := strings.ToLower(args[0])
	if slug == "term" {
		slug = "fibterm"
	}
	if slug == "primes" {
		fmt.Fprintf(r.out, "%sprimes takes a range and cannot be the bare-number default%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	if _, ok := r.factory.Get(slug); !ok {
		fmt.Fprintf(r.out, "%sOperation not found: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.defaultOp = slug
	fmt.Fprintf(r.out, "Bare numbers now run %s%s%s.\n", ui.ColorYellow(), slug, ui.ColorReset())
}

// run performs one operation with a spinner and prints the outcome.
func (r *REPL) run(slug string, req numeric.Request) {
	op, ok := r.factory.Get(slug)
	if !ok {
		fmt.Fprintf(r.out, "%sOperation not found: %s%s\n", ui.ColorRed(), slug, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Computing %s%s%s with %s%s%s...\n",
		ui.ColorMagenta(), op.Describe(req), ui.ColorReset(),
		ui.ColorCyan(), op.Name(), ui.ColorReset())

	opts := numeric.Options{Parallelism: r.config.Parallelism}

	// Create a progress channel and show a spinner while computing
	progressChan := make(chan progress.Update, 10)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	value, err := op.Compute(ctx, progress.ChannelCallback(progressChan, 0), req, opts)
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	durationStr := format.FormatExecutionDuration(duration)

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())

	valueStr := value.String()
	if len(valueStr) > TruncationLimit {
		fmt.Fprintf(r.out, "  %s = %s%s...%s%s (truncated)\n",
			op.Describe(req), ui.ColorGreen(),
			valueStr[:DisplayEdges], valueStr[len(valueStr)-DisplayEdges:], ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  %s = %s%s%s\n", op.Describe(req), ui.ColorGreen(), valueStr, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdList lists the registered operations.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, op := range r.factory.GetAll() {
		fmt.Fprintf(r.out, "  %s%-8s%s - %s\n", ui.ColorYellow(), op.Slug(), ui.ColorReset(), op.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:       %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Scan workers:  %s%d%s\n", ui.ColorCyan(), r.config.Parallelism, ui.ColorReset())
	fmt.Fprintf(r.out, "  Default op:    %s%s%s\n", ui.ColorCyan(), r.defaultOp, ui.ColorReset())
	fmt.Fprintf(r.out, "  Operations:    %s%s%s\n", ui.ColorCyan(), strings.Join(r.factory.List(), ", "), ui.ColorReset())
	fmt.Fprintln(r.out)
}
