package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// renderStatusBar shows the desktop state, or the last error or action.
func renderStatusBar(state platform.DesktopState, status string, err error, width int) string {
	wa := state.WorkAreaCurrentMonitor
	text := fmt.Sprintf("workspace %d  monitor %d  work area %dx%d+%d+%d",
		state.CurrentWorkspace, state.Monitor, wa.Width, wa.Height, wa.X, wa.Y)

	switch {
	case err != nil:
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("●")
		text = dot + " " + err.Error()
	case status != "":
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
		text = dot + " " + status + "  " + text
	}

	style := lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("250")).
		Padding(0, 1)
	return style.Render(text)
}

// renderHelpBar renders the bottom keybinding bar.
func renderHelpBar(editing bool, width int) string {
	help := "enter: focus  m: minimize  a/A: above on/off  s: stick  e: move  /: filter  r: refresh  q: quit"
	if editing {
		help = "tab: next field  enter: submit  esc: cancel"
	}
	style := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	return style.Render(help)
}
