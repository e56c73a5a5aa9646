package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsOp      bool     // true if values come from the operation list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "op", Help: "Operation to run", IsOp: true, ValueName: "operation"},
	{Short: "n", Help: "Operation argument", ValueName: "number"},
	{Long: "lo", Help: "Prime scan lower bound", ValueName: "number"},
	{Long: "hi", Help: "Prime scan upper bound", ValueName: "number"},
	{Long: "parallelism", Help: "Prime scan workers", ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Show full values and memory stats"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "repl", Help: "Start the interactive session"},
	{Long: "tui", Help: "Start the dashboard"},
	{Long: "metrics-addr", Help: "Prometheus listen address", ValueName: "address"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - operations: List of available operation slugs.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, operations []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, operations)
	case "zsh":
		return generateZshCompletion(out, operations)
	case "fish":
		return generateFishCompletion(out, operations)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// formatOpList joins operation slugs with space separators.
func formatOpList(operations []string) string {
	return strings.Join(operations, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, operations []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	for _, f := range flagRegistry {
		var body string
		switch {
		case f.IsOp:
			body = `COMPREPLY=( $(compgen -W "${operations}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		var patterns []string
		if f.Long != "" {
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
		}
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(patterns, "|"), body)
	}

	script := fmt.Sprintf(`# Bash completion script for numcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_numcalc_completions() {
    local cur prev opts operations
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available operations
    operations="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _numcalc_completions numcalc
`, strings.Join(opts, " "), formatOpList(operations), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsOp:
		valueSuffix = fmt.Sprintf(":%s:($operations)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, operations []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef numcalc

# Zsh completion script for numcalc
# Add this to your ~/.zshrc or place in $fpath

_numcalc() {
    local -a operations
    operations=(%s all)

    _arguments -s \
%s
}

_numcalc "$@"
`, formatOpList(operations), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, operations []string) error {
	var lines []string
	for _, f := range flagRegistry {
		var b strings.Builder
		b.WriteString("complete -c numcalc")
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		if f.Long != "" {
			fmt.Fprintf(&b, " -l %s", f.Long)
		}
		switch {
		case f.IsOp:
			fmt.Fprintf(&b, " -x -a \"%s all\"", formatOpList(operations))
		case f.IsFile:
			b.WriteString(" -r")
		case len(f.Values) > 0:
			fmt.Fprintf(&b, " -x -a \"%s\"", strings.Join(f.Values, " "))
		case f.ValueName != "":
			b.WriteString(" -x")
		}
		fmt.Fprintf(&b, " -d \"%s\"", f.Help)
		lines = append(lines, b.String())
	}

	script := fmt.Sprintf(`# Fish completion script for numcalc
# Place in ~/.config/fish/completions/numcalc.fish

%s
`, strings.Join(lines, "\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}
