// Package tui implements the live dashboard mode: a bubbletea program that
// runs the requested operations while rendering progress, results, and system
// resource usage.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/sysmon"
)

// Messages exchanged between the bridge goroutines and the model.
type (
	// ProgressMsg carries one aggregated progress update.
	ProgressMsg struct {
		OperationIndex  int
		Value           float64
		AverageProgress float64
	}
	// ProgressDoneMsg signals that the progress channel was drained.
	ProgressDoneMsg struct{}
	// SummaryMsg carries the per-operation run summary.
	SummaryMsg struct {
		Results []orchestration.OperationResult
	}
	// FinalResultMsg carries one successful operation result.
	FinalResultMsg struct {
		Result  orchestration.OperationResult
		Verbose bool
	}
	// ErrorMsg carries the first operation failure.
	ErrorMsg struct {
		Err      error
		Duration time.Duration
	}
	// RunCompleteMsg signals that the whole run finished.
	RunCompleteMsg struct {
		ExitCode   int
		Generation uint64
	}
	// ContextCancelledMsg signals parent context cancellation.
	ContextCancelledMsg struct {
		Err        error
		Generation uint64
	}
	// TickMsg drives periodic refreshes.
	TickMsg time.Time
	// SysStatsMsg carries a system resource snapshot.
	SysStatsMsg sysmon.Stats
)

// Layout constants for the dashboard.
const (
	headerHeight  = 1
	footerHeight  = 1
	progressLines = 2
	inputHeight   = 1
	minBodyHeight = 4
	maxLogValue   = 80
)

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header HeaderModel
	logs   viewport.Model
	help   help.Model
	keymap KeyMap
	input  textinput.Model

	lines    []string
	progress float64

	ctx        context.Context
	cancel     context.CancelFunc
	parentCtx  context.Context
	factory    numeric.OperationFactory
	tasks      []orchestration.Task
	cfg        config.AppConfig
	ref        *programRef
	generation uint64

	width, height int
	paused        bool
	done          bool
	failed        bool
	inputActive   bool
	exitCode      int
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, factory numeric.OperationFactory, tasks []orchestration.Task, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	m := Model{
		header:    NewHeaderModel(version),
		logs:      viewport.New(0, 0),
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		input:     newCommandInput(),
		ctx:       ctx,
		cancel:    cancel,
		parentCtx: parentCtx,
		factory:   factory,
		tasks:     tasks,
		cfg:       cfg,
		ref:       &programRef{},
		exitCode:  apperrors.ExitSuccess,
	}
	for _, t := range tasks {
		m.lines = append(m.lines, queuedLine(t))
	}
	m.logs.SetContent(joinLines(m.lines))
	return m
}

// queuedLine renders the log entry for a task that has not started yet.
func queuedLine(t orchestration.Task) string {
	return dimStyle.Render("queued ") + logOpStyle.Render(t.Op.Name()) +
		dimStyle.Render(" ("+t.Op.Describe(t.Req)+")")
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.tasks, m.cfg, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputActive {
			if msg.String() == "ctrl+c" {
				if m.cancel != nil {
					m.cancel()
				}
				m.done = true
				return m, tea.Quit
			}
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.progress = msg.AverageProgress
		}
		return m, nil

	case ProgressDoneMsg:
		m.progress = 1.0
		return m, nil

	case SummaryMsg:
		for _, res := range msg.Results {
			m.appendSummaryLine(res)
		}
		return m, nil

	case FinalResultMsg:
		m.appendResultLine(msg.Result)
		return m, nil

	case ErrorMsg:
		m.lines = append(m.lines, logErrorStyle.Render(fmt.Sprintf("error: %v", msg.Err)))
		m.failed = true
		m.refreshLogs()
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			// The run was cut short from outside (timeout or signal);
			// exit with the same code the CLI mode would use.
			m.done = true
			m.exitCode = apperrors.HandleCalculationError(msg.Err, 0, io.Discard, plainColors{})
		}
		m.header.SetDone()
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case SysStatsMsg:
		m.header.SetStats(sysmon.Stats(msg))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		// A deliberate quit keeps the exit code already earned by the run.
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutPanels()
		return m, nil

	case key.Matches(msg, m.keymap.Input):
		m.inputActive = true
		m.layoutPanels()
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Reset):
		// Cancel the current run and start over under a fresh context.
		m.lines = nil
		return m.startTasks(m.tasks)

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	return m, nil
}

// appendSummaryLine records one summary row in the log panel.
func (m *Model) appendSummaryLine(res orchestration.OperationResult) {
	duration := format.FormatExecutionDuration(res.Duration)
	if res.Err != nil {
		m.lines = append(m.lines, logErrorStyle.Render(
			fmt.Sprintf("✗ %s failed after %s: %v", res.Name, duration, res.Err)))
	} else {
		m.lines = append(m.lines, logSuccessStyle.Render(
			fmt.Sprintf("✓ %s completed in %s", res.Name, duration)))
	}
	m.refreshLogs()
}

// appendResultLine records one final value in the log panel.
func (m *Model) appendResultLine(res orchestration.OperationResult) {
	value := res.Value.String()
	if len(value) > maxLogValue {
		value = value[:maxLogValue/2] + "…" + value[len(value)-maxLogValue/2:]
	}
	m.lines = append(m.lines,
		logOpStyle.Render(res.Detail)+" = "+logSuccessStyle.Render(value))
	m.refreshLogs()
}

func (m *Model) refreshLogs() {
	m.logs.SetContent(joinLines(m.lines))
	m.logs.GotoBottom()
}

func joinLines(lines []string) string {
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width

	body := m.height - headerHeight - footerHeight - progressLines
	if m.inputActive {
		body -= inputHeight
	}
	if body < minBodyHeight {
		body = minBodyHeight
	}
	m.logs.Width = m.width - 2
	m.logs.Height = body - 2
	m.input.Width = m.width - 8
}

// renderProgress renders the aggregated progress line with its status marker.
func (m Model) renderProgress() string {
	width := m.width - 12
	if width < 10 {
		width = 10
	}
	filled := int(m.progress * float64(width))
	if filled > width {
		filled = width
	}

	bar := progressBarStyle.Render(repeat('█', filled)) +
		progressBgStyle.Render(repeat('░', width-filled))

	status := fmt.Sprintf(" %5.1f%%", m.progress*100)
	switch {
	case m.failed:
		status = statusErrorStyle.Render(" FAILED")
	case m.done:
		status = statusDoneStyle.Render(" DONE")
	case m.paused:
		status = dimStyle.Render(" PAUSED")
	}

	return " " + bar + status
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	logs := panelStyle.Width(m.width - 2).Render(m.logs.View())
	progress := m.renderProgress()
	footer := footerStyle.Render(m.help.View(m.keymap))

	sections := []string{header, logs, progress}
	if m.inputActive {
		sections = append(sections, " "+m.input.View())
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, factory numeric.OperationFactory, tasks []orchestration.Task, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, factory, tasks, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunCmd returns a tea.Cmd that launches the orchestration.
func startRunCmd(ref *programRef, ctx context.Context, tasks []orchestration.Task, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteOperations(ctx, tasks, cfg.ToOptions(), progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{Verbose: cfg.Verbose}
		exitCode := orchestration.AnalyzeResults(results, presOpts, presenter, presenter, io.Discard)

		return RunCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide resource stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
