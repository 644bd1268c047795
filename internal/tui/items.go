package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/wmhttp/internal/platform"
)

var windowTypeNames = map[platform.WindowType]string{
	platform.WindowTypeNormal:        "normal",
	platform.WindowTypeDesktop:       "desktop",
	platform.WindowTypeDock:          "dock",
	platform.WindowTypeDialog:        "dialog",
	platform.WindowTypeModalDialog:   "modal",
	platform.WindowTypeToolbar:       "toolbar",
	platform.WindowTypeMenu:          "menu",
	platform.WindowTypeUtility:       "utility",
	platform.WindowTypeSplashscreen:  "splash",
	platform.WindowTypeDropdownMenu:  "dropdown",
	platform.WindowTypePopupMenu:     "popup",
	platform.WindowTypeTooltip:       "tooltip",
	platform.WindowTypeNotification:  "notification",
	platform.WindowTypeCombo:         "combo",
	platform.WindowTypeDND:           "dnd",
	platform.WindowTypeOverrideOther: "override",
}

// windowItem is a list item for one window snapshot.
type windowItem struct {
	win platform.Window
}

func (i windowItem) Title() string {
	name := i.win.Name
	if name == "" {
		name = "(untitled)"
	}
	switch {
	case i.win.IsHidden:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("○") + " " + name
	case i.win.IsFullscreen:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Render("■") + " " + name
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●") + " " + name
	}
}

func (i windowItem) Description() string {
	w := i.win
	parts := []string{
		fmt.Sprintf("0x%x", uint32(w.ID)),
		typeName(w.Type),
		workspaceLabel(w.Workspace),
		fmt.Sprintf("mon %d", w.Monitor),
		fmt.Sprintf("%dx%d+%d+%d", w.Width, w.Height, w.X, w.Y),
	}
	if w.PID != 0 {
		parts = append(parts, fmt.Sprintf("pid %d", w.PID))
	}
	if w.IsHidden {
		parts = append(parts, "minimized")
	}
	return strings.Join(parts, " | ")
}

func (i windowItem) FilterValue() string { return i.win.Name }

func typeName(t platform.WindowType) string {
	if name, ok := windowTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type %d", int(t))
}

func workspaceLabel(ws int) string {
	if ws == platform.AllWorkspaces {
		return "all workspaces"
	}
	return fmt.Sprintf("ws %d", ws)
}

func buildItems(windows []platform.Window) []list.Item {
	items := make([]list.Item, len(windows))
	for i, w := range windows {
		items[i] = windowItem{win: w}
	}
	return items
}

func newWindowList(items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("15")).
		BorderForeground(lipgloss.Color("62"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("250")).
		BorderForeground(lipgloss.Color("62"))

	l := list.New(items, delegate, 0, 0)
	l.Title = "Windows"
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}
