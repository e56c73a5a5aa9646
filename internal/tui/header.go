package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/sysmon"
)

// HeaderModel renders the top bar: title, version, elapsed time, and the
// latest system resource snapshot.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	width     int
	stats     sysmon.Stats
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// SetStats updates the displayed resource snapshot.
func (h *HeaderModel) SetStats(s sysmon.Stats) {
	h.stats = s
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "NumCalc Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := dimStyle.Render(" | ")

	var duration time.Duration
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	} else {
		duration = time.Since(h.startTime)
	}
	elapsed := elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(duration)))

	sys := dimStyle.Render(fmt.Sprintf("CPU %.0f%%  MEM %.0f%%  GO %d",
		h.stats.CPUPercent, h.stats.MemPercent, h.stats.Goroutines))

	leftPart := title + pipe + elapsed
	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(sys)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - leftLen - rightLen
	if gap < 0 {
		gap = 0
	}

	row := leftPart + spaces(gap) + sys

	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
