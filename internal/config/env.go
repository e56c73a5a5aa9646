// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// rawArgs points at the unparsed numeric inputs so environment values flow
// through the same validation as flag values.
type rawArgs struct {
	n, lo, hi *string
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the NUMCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, rawArgs, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric inputs stay raw strings here so ParseIndex validates them later.
	{"N", []string{"n"}, func(_ *AppConfig, raw rawArgs, v string) {
		*raw.n = v
	}},
	{"LO", []string{"lo"}, func(_ *AppConfig, raw rawArgs, v string) {
		*raw.lo = v
	}},
	{"HI", []string{"hi"}, func(_ *AppConfig, raw rawArgs, v string) {
		*raw.hi = v
	}},
	{"PARALLELISM", []string{"parallelism"}, func(c *AppConfig, _ rawArgs, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Parallelism = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, _ rawArgs, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"OP", []string{"op"}, func(c *AppConfig, _ rawArgs, v string) {
		c.Op = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, _ rawArgs, v string) {
		c.OutputFile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, _ rawArgs, v string) {
		c.MetricsAddr = v
	}},

	// Boolean overrides
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, _ rawArgs, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, _ rawArgs, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, _ rawArgs, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"REPL", []string{"repl"}, func(c *AppConfig, _ rawArgs, v string) {
		c.REPL = parseBoolEnv(v, c.REPL)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, _ rawArgs, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with NUMCALC_):
//   - N, LO, HI, PARALLELISM, TIMEOUT, OP, OUTPUT, METRICS_ADDR,
//     QUIET, VERBOSE, NO_COLOR, REPL, TUI
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, nRaw, loRaw, hiRaw *string) {
	raw := rawArgs{n: nRaw, lo: loRaw, hi: hiRaw}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, raw, val)
		}
	}
}
