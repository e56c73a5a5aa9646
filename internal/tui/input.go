package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
)

// newCommandInput builds the prompt used to launch operations from inside
// the dashboard.
func newCommandInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "run> "
	ti.Placeholder = "fact 20 | prime 97 | primes 1 100"
	ti.CharLimit = 64
	return ti
}

// handleInputKey routes keys to the command prompt while it is focused.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.input.Reset()
		m.input.Blur()
		m.inputActive = false
		m.layoutPanels()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.Blur()
		m.inputActive = false
		m.layoutPanels()
		if line == "" {
			return m, nil
		}
		task, err := m.parseCommand(line)
		if err != nil {
			m.lines = append(m.lines, logErrorStyle.Render("input: "+err.Error()))
			m.refreshLogs()
			return m, nil
		}
		return m.startTasks([]orchestration.Task{task})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseCommand resolves "op arg [arg]" into a runnable task. The prime scan
// takes a range; every other operation takes a single argument.
func (m Model) parseCommand(line string) (orchestration.Task, error) {
	fields := strings.Fields(line)
	slug := strings.ToLower(fields[0])
	if slug == "term" {
		slug = "fibterm"
	}

	op, ok := m.factory.Get(slug)
	if !ok {
		return orchestration.Task{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	if slug == "primes" {
		if len(fields) != 3 {
			return orchestration.Task{}, fmt.Errorf("usage: primes <lo> <hi>")
		}
		lo, err := numeric.ParseIndex("lo", fields[1])
		if err != nil {
			return orchestration.Task{}, err
		}
		hi, err := numeric.ParseIndex("hi", fields[2])
		if err != nil {
			return orchestration.Task{}, err
		}
		return orchestration.Task{Op: op, Req: numeric.Request{Lo: lo, Hi: hi}}, nil
	}

	if len(fields) != 2 {
		return orchestration.Task{}, fmt.Errorf("usage: %s <n>", slug)
	}
	n, err := numeric.ParseIndex("n", fields[1])
	if err != nil {
		return orchestration.Task{}, err
	}
	return orchestration.Task{Op: op, Req: numeric.Request{N: n}}, nil
}

// startTasks cancels any in-flight run and launches tasks under a fresh
// context and generation. Queued lines are appended to the existing log.
func (m Model) startTasks(tasks []orchestration.Task) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	ctx, cancel := context.WithCancel(m.parentCtx)
	m.ctx = ctx
	m.cancel = cancel
	m.tasks = tasks

	m.progress = 0
	m.done = false
	m.failed = false
	m.paused = false
	m.exitCode = apperrors.ExitSuccess
	m.header.Reset()

	for _, t := range tasks {
		m.lines = append(m.lines, queuedLine(t))
	}
	m.refreshLogs()

	return m, tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, ctx, tasks, m.cfg, m.generation),
		watchContextCmd(ctx, m.generation),
	)
}
