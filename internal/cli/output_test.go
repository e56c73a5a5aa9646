package cli

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

func TestMain(m *testing.M) {
	ui.InitTheme(true) // keep assertions free of ANSI codes
	os.Exit(m.Run())
}

func factorialResult(n int64) orchestration.OperationResult {
	v := new(big.Int).MulRange(1, n)
	return orchestration.OperationResult{
		Name:     "Factorial",
		Detail:   "5!",
		Value:    numeric.IntValue{Int: v},
		Duration: 3 * time.Millisecond,
	}
}

func TestFormatQuietResult(t *testing.T) {
	if got := FormatQuietResult(factorialResult(5)); got != "120" {
		t.Errorf("FormatQuietResult() = %q, want %q", got, "120")
	}
}

func TestDisplayResult_Truncation(t *testing.T) {
	res := factorialResult(200) // 375 digits
	var buf bytes.Buffer
	DisplayResult(res, false, &buf)

	out := buf.String()
	if !strings.Contains(out, "truncated") {
		t.Errorf("expected truncated output, got:\n%s", out)
	}
	if strings.Contains(out, res.Value.String()) {
		t.Error("truncated output should not contain the full value")
	}
}

func TestDisplayResult_VerboseShowsFullValue(t *testing.T) {
	res := factorialResult(200)
	var buf bytes.Buffer
	DisplayResult(res, true, &buf)

	if !strings.Contains(buf.String(), res.Value.String()) {
		t.Error("verbose output should contain the full value")
	}
}

func TestDisplayResultWithConfig_Quiet(t *testing.T) {
	var buf bytes.Buffer
	err := DisplayResultWithConfig(&buf, factorialResult(5), OutputConfig{Quiet: true})
	if err != nil {
		t.Fatalf("DisplayResultWithConfig() error: %v", err)
	}
	if got := buf.String(); got != "120\n" {
		t.Errorf("quiet output = %q, want %q", got, "120\n")
	}
}

func TestWriteResultToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.txt")
	res := factorialResult(5)

	if err := WriteResultToFile(res, OutputConfig{OutputFile: path}); err != nil {
		t.Fatalf("WriteResultToFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"# Operation: Factorial", "# Request: 5!", "5! =\n120\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("output file missing %q:\n%s", want, content)
		}
	}
}

func TestWriteResultToFile_NoPath(t *testing.T) {
	if err := WriteResultToFile(factorialResult(5), OutputConfig{}); err != nil {
		t.Errorf("expected nil error for empty output path, got %v", err)
	}
}
