package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numcalc/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	elapsedStyle     lipgloss.Style
	logOpStyle       lipgloss.Style
	logSuccessStyle  lipgloss.Style
	logErrorStyle    lipgloss.Style
	progressBarStyle lipgloss.Style
	progressBgStyle  lipgloss.Style
	footerStyle      lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	logOpStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	logSuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	progressBarStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	progressBgStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}
