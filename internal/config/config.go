// Package config defines the application configuration, parsed from command
// line flags with environment variable overrides.
//
// Resolution priority: CLI flags > NUMCALC_* environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/numeric"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "NUMCALC_"

// DefaultTimeout bounds a single run of the requested operations.
const DefaultTimeout = 1 * time.Minute

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Op is the requested operation slug ("fact", "prime", "fib", "fibterm",
	// "primes" or "all"). Empty selects the demonstration mode.
	Op string
	// N is the operation argument: factorial input, primality candidate,
	// sequence length, or term index.
	N uint64
	// NSet records whether -n was provided at all.
	NSet bool
	// Lo and Hi bound the prime-counting scan.
	Lo, Hi uint64
	// Parallelism bounds the prime-scan workers. 0 means adaptive.
	Parallelism int
	// Timeout bounds a single run.
	Timeout time.Duration
	// Quiet suppresses everything except raw results.
	Quiet bool
	// Verbose adds memory statistics after the run.
	Verbose bool
	// OutputFile saves the result to a file when non-empty.
	OutputFile string
	// NoColor disables ANSI colors.
	NoColor bool
	// REPL starts the interactive session.
	REPL bool
	// TUI starts the dashboard.
	TUI bool
	// MetricsAddr enables the observability listener when non-empty.
	MetricsAddr string
	// Completion selects a shell to emit a completion script for.
	Completion string
}

// Demo reports whether the invocation should run the fixed demonstration
// (no operation requested and no alternate mode selected).
func (c AppConfig) Demo() bool {
	return c.Op == "" && !c.REPL && !c.TUI && c.Completion == ""
}

// ToOptions converts the configuration to operation tuning options.
func (c AppConfig) ToOptions() numeric.Options {
	return numeric.Options{Parallelism: c.Parallelism}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides, and validates the result.
//
// Parameters:
//   - programName: Used in usage output.
//   - args: The arguments, excluding the program name.
//   - errWriter: Destination for usage and parse diagnostics.
//   - availableOps: Valid operation slugs from the registry.
//
// Returns flag.ErrHelp when -h/--help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableOps []string) (AppConfig, error) {
	cfg := AppConfig{Timeout: DefaultTimeout}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var nRaw, loRaw, hiRaw string
	fs.StringVar(&cfg.Op, "op", "", fmt.Sprintf("operation to run: %s, or all", strings.Join(availableOps, ", ")))
	fs.StringVar(&nRaw, "n", "", "operation argument (non-negative integer)")
	fs.StringVar(&loRaw, "lo", "", "prime scan lower bound (primes operation)")
	fs.StringVar(&hiRaw, "hi", "", "prime scan upper bound (primes operation)")
	fs.IntVar(&cfg.Parallelism, "parallelism", 0, "prime scan workers (0 = adaptive)")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum duration for a run")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only raw results")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only raw results (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "show memory statistics after the run")
	fs.BoolVar(&cfg.Verbose, "v", false, "show memory statistics (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the result to a file")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the result to a file (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive session")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the dashboard")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script: bash, zsh or fish")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Integer utilities: factorial, primality testing, Fibonacci sequences.\n")
		fmt.Fprintf(errWriter, "Without flags, runs a fixed demonstration of all three.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs, &nRaw, &loRaw, &hiRaw)

	if nRaw != "" {
		n, err := numeric.ParseIndex("n", nRaw)
		if err != nil {
			return cfg, err
		}
		cfg.N = n
		cfg.NSet = true
	}
	if loRaw != "" {
		lo, err := numeric.ParseIndex("lo", loRaw)
		if err != nil {
			return cfg, err
		}
		cfg.Lo = lo
	}
	if hiRaw != "" {
		hi, err := numeric.ParseIndex("hi", hiRaw)
		if err != nil {
			return cfg, err
		}
		cfg.Hi = hi
	}

	if err := validate(&cfg, availableOps, hiRaw); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate cross-checks the resolved configuration.
func validate(cfg *AppConfig, availableOps []string, hiRaw string) error {
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Parallelism < 0 {
		return apperrors.NewConfigError("parallelism must be non-negative, got %d", cfg.Parallelism)
	}
	switch cfg.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", cfg.Completion)
	}

	if cfg.Op == "" {
		return nil
	}
	if cfg.Op != "all" && !contains(availableOps, cfg.Op) {
		return apperrors.NewConfigError("unknown operation %q (available: %s, all)",
			cfg.Op, strings.Join(availableOps, ", "))
	}
	if cfg.Op == "primes" {
		if hiRaw == "" {
			return apperrors.NewConfigError("operation %q requires -hi", cfg.Op)
		}
		return nil
	}
	if !cfg.NSet {
		return apperrors.NewConfigError("operation %q requires -n", cfg.Op)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
