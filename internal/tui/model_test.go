package tui

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
)

func demoTasks() []orchestration.Task {
	return []orchestration.Task{
		{Op: numeric.FactorialOp{}, Req: numeric.Request{N: 5}},
		{Op: numeric.SequenceOp{}, Req: numeric.Request{N: 10}},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), numeric.NewDefaultFactory(), demoTasks(), config.AppConfig{}, "test")
	t.Cleanup(m.cancel)
	return m
}

func TestNewModel_QueuesTasks(t *testing.T) {
	m := newTestModel(t)

	if len(m.lines) != 2 {
		t.Fatalf("got %d queued lines, want 2", len(m.lines))
	}
	content := strings.Join(m.lines, "\n")
	for _, want := range []string{"Factorial", "Fibonacci Sequence"} {
		if !strings.Contains(content, want) {
			t.Errorf("queued lines missing %q", want)
		}
	}
}

func TestUpdate_WindowSizeLaysOutPanels(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	if m.width != 80 || m.height != 24 {
		t.Errorf("got %dx%d, want 80x24", m.width, m.height)
	}
	if m.logs.Width <= 0 || m.logs.Height <= 0 {
		t.Errorf("log panel not sized: %dx%d", m.logs.Width, m.logs.Height)
	}
}

func TestUpdate_ProgressMsg(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ProgressMsg{OperationIndex: 0, Value: 0.5, AverageProgress: 0.25})
	m = updated.(Model)

	if m.progress != 0.25 {
		t.Errorf("progress = %f, want 0.25", m.progress)
	}
}

func TestUpdate_ProgressIgnoredWhilePaused(t *testing.T) {
	m := newTestModel(t)
	m.paused = true

	updated, _ := m.Update(ProgressMsg{AverageProgress: 0.9})
	m = updated.(Model)

	if m.progress != 0 {
		t.Errorf("paused model accepted progress update: %f", m.progress)
	}
}

func TestUpdate_FinalResultTruncatesLongValues(t *testing.T) {
	m := newTestModel(t)

	res := orchestration.OperationResult{
		Name:   "Factorial",
		Detail: "200!",
		Value:  numeric.IntValue{Int: new(big.Int).MulRange(1, 200)},
	}
	updated, _ := m.Update(FinalResultMsg{Result: res})
	m = updated.(Model)

	last := m.lines[len(m.lines)-1]
	if !strings.Contains(last, "…") {
		t.Errorf("long value not truncated: %q", last)
	}
}

func TestUpdate_ErrorMarksRunFailed(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ErrorMsg{Err: errors.New("boom"), Duration: time.Second})
	m = updated.(Model)

	if !m.failed {
		t.Error("failed flag not set after ErrorMsg")
	}
	if !strings.Contains(m.lines[len(m.lines)-1], "boom") {
		t.Error("error line not appended to log")
	}
}

func TestUpdate_StaleRunCompleteIgnored(t *testing.T) {
	m := newTestModel(t)
	m.generation = 2

	updated, _ := m.Update(RunCompleteMsg{ExitCode: 1, Generation: 1})
	m = updated.(Model)

	if m.done {
		t.Error("stale RunCompleteMsg should be ignored")
	}
}

func TestHandleKey_QuitCancelsContext(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	select {
	case <-m.ctx.Done():
	default:
		t.Error("context not canceled on quit")
	}
}

func TestHandleKey_ResetBumpsGeneration(t *testing.T) {
	m := newTestModel(t)
	m.done = true
	m.progress = 1.0

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	if m.generation != 1 {
		t.Errorf("generation = %d, want 1", m.generation)
	}
	if m.done || m.progress != 0 {
		t.Error("reset did not clear run state")
	}
	if cmd == nil {
		t.Error("expected restart commands")
	}
}

func TestView_BeforeFirstWindowSize(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before sizing", got)
	}
}

func TestHandleKey_InputActivatesPrompt(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	m = updated.(Model)

	if !m.inputActive {
		t.Fatal("prompt not activated")
	}
	if cmd == nil {
		t.Error("expected a focus command")
	}
}

func TestInput_SubmitStartsOperation(t *testing.T) {
	m := newTestModel(t)
	m.inputActive = true
	m.input.SetValue("fact 5")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.inputActive {
		t.Error("prompt still active after submit")
	}
	if m.generation != 1 {
		t.Errorf("generation = %d, want 1 after launching a new run", m.generation)
	}
	if cmd == nil {
		t.Error("expected run commands")
	}
	if !strings.Contains(m.lines[len(m.lines)-1], "5!") {
		t.Errorf("queued line missing the new request: %q", m.lines[len(m.lines)-1])
	}
}

func TestInput_PrimesCommandBuildsRange(t *testing.T) {
	m := newTestModel(t)

	task, err := m.parseCommand("primes 1 100")
	if err != nil {
		t.Fatalf("parseCommand error: %v", err)
	}
	if task.Op.Slug() != "primes" || task.Req.Lo != 1 || task.Req.Hi != 100 {
		t.Errorf("task = %s [%d, %d], want primes [1, 100]",
			task.Op.Slug(), task.Req.Lo, task.Req.Hi)
	}
}

func TestInput_UnknownOperationLogsError(t *testing.T) {
	m := newTestModel(t)
	m.inputActive = true
	m.input.SetValue("cube 3")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.generation != 0 {
		t.Error("invalid command must not launch a run")
	}
	if !strings.Contains(m.lines[len(m.lines)-1], "unknown operation") {
		t.Errorf("error line missing: %q", m.lines[len(m.lines)-1])
	}
}

func TestInput_EscClosesPrompt(t *testing.T) {
	m := newTestModel(t)
	m.inputActive = true
	m.input.SetValue("fact 5")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.inputActive {
		t.Error("prompt still active after esc")
	}
	if m.input.Value() != "" {
		t.Errorf("prompt not cleared: %q", m.input.Value())
	}
}

func TestInput_TypingDoesNotTriggerGlobalKeys(t *testing.T) {
	m := newTestModel(t)
	m.inputActive = true
	m.input.Focus()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	select {
	case <-m.ctx.Done():
		t.Error("typing 'q' in the prompt canceled the run")
	default:
	}
	if m.input.Value() != "q" {
		t.Errorf("prompt value = %q, want %q", m.input.Value(), "q")
	}
}

func TestUpdate_TimeoutCancellationMapsExitCode(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(ContextCancelledMsg{Err: context.DeadlineExceeded, Generation: 0})
	m = updated.(Model)

	if m.exitCode != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", m.exitCode, apperrors.ExitErrorTimeout)
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestUpdate_CancellationAfterQuitKeepsExitCode(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	updated, _ = m.Update(ContextCancelledMsg{Err: context.Canceled, Generation: 0})
	m = updated.(Model)

	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exit code = %d after deliberate quit, want %d", m.exitCode, apperrors.ExitSuccess)
	}
}
