package app

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	a, err := New(append([]string{"numcalc"}, args...), io.Discard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return a
}

func TestNew_DefaultsToDemo(t *testing.T) {
	a := newApp(t)
	if !a.Config.Demo() {
		t.Error("expected demo mode with no arguments")
	}
	if a.Config.Parallelism < 1 {
		t.Errorf("adaptive parallelism not applied: %d", a.Config.Parallelism)
	}
}

func TestNew_HelpError(t *testing.T) {
	_, err := New([]string{"numcalc", "-h"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("expected a help error, got %v", err)
	}
}

func TestRun_DemoPrintsThreeLines(t *testing.T) {
	a := newApp(t)

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}

	want := "The factorial of 5 is 120\n" +
		"Is 29 a prime number? Yes\n" +
		"The first 10 numbers in the Fibonacci sequence are: [0 1 1 2 3 5 8 13 21 34]\n"
	if got := out.String(); got != want {
		t.Errorf("demo output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRun_SingleOperationQuiet(t *testing.T) {
	a := newApp(t, "-op", "fact", "-n", "5", "-q")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if got := out.String(); got != "120\n" {
		t.Errorf("quiet output = %q, want %q", got, "120\n")
	}
}

func TestRun_AllOperationsQuiet(t *testing.T) {
	a := newApp(t, "-op", "all", "-n", "10", "-q")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}

	got := out.String()
	wants := []string{
		"3628800",                // 10!
		"false",                  // is_prime(10)
		"[0 1 1 2 3 5 8 13 21 34]", // first ten
		"55\n",                   // F(10)
		"4\n",                    // primes in [0, 10]
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_TimeoutMapsToExitCode(t *testing.T) {
	a := newApp(t, "-op", "fact", "-n", "100000000", "-q", "-timeout", "50ms")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestRun_Completion(t *testing.T) {
	a := newApp(t, "-completion", "bash")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "complete -F _numcalc_completions numcalc") {
		t.Error("completion script not generated")
	}
}

func TestBuildTasks(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		slugs []string
	}{
		{"empty selection yields demo trio", nil, []string{"fact", "prime", "fib"}},
		{"single op", []string{"-op", "fibterm", "-n", "42"}, []string{"fibterm"}},
		{"all ops", []string{"-op", "all", "-n", "10"}, []string{"fact", "prime", "fib", "fibterm", "primes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, tt.args...)
			tasks, err := a.buildTasks()
			if err != nil {
				t.Fatalf("buildTasks() error: %v", err)
			}
			if len(tasks) != len(tt.slugs) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tt.slugs))
			}
			for i, slug := range tt.slugs {
				if tasks[i].Op.Slug() != slug {
					t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Op.Slug(), slug)
				}
			}
		})
	}
}

func TestBuildTasks_PrimesRangeDefaultsToN(t *testing.T) {
	a := newApp(t, "-op", "all", "-n", "100")
	tasks, err := a.buildTasks()
	if err != nil {
		t.Fatalf("buildTasks() error: %v", err)
	}
	for _, task := range tasks {
		if task.Op.Slug() == "primes" {
			if task.Req.Lo != 0 || task.Req.Hi != 100 {
				t.Errorf("primes range = [%d, %d], want [0, 100]", task.Req.Lo, task.Req.Hi)
			}
			return
		}
	}
	t.Fatal("primes task not built")
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-v"}, false},
		{[]string{"-op", "fact"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "numcalc") {
		t.Errorf("version banner = %q", out.String())
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp not recognized")
	}
	if IsHelpError(context.Canceled) {
		t.Error("unrelated error recognized as help")
	}
}

func TestRun_VerboseAddsMemoryStats(t *testing.T) {
	a := newApp(t, "-op", "fact", "-n", "100", "-v", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "Memory Stats:") {
		t.Error("verbose run missing memory stats")
	}
}

func TestRun_DemoHonorsTimeout(t *testing.T) {
	a := newApp(t)
	a.Config.Timeout = time.Nanosecond

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code == apperrors.ExitSuccess {
		t.Error("expected a failure exit code for an expired demo deadline")
	}
}
