// Package tui is an interactive terminal browser for the managed windows.
package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// Run opens the window browser on the current terminal and blocks until the
// user quits.
func Run(backend platform.Backend) error {
	if backend == nil {
		return errors.New("window manager backend is required")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("windows browser requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(backend), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("windows browser failed: %w", err)
	}
	return nil
}
