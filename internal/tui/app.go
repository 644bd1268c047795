package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// model is the root bubbletea model for the window browser.
type model struct {
	backend platform.Backend
	list    list.Model

	// Edit mode
	editing  bool
	form     *huh.Form
	geometry *geometryForm

	state  platform.DesktopState
	status string
	err    error

	width  int
	height int
}

func newModel(backend platform.Backend) model {
	m := model{
		backend: backend,
		list:    newWindowList(nil),
	}
	m.refresh()
	return m
}

// refresh reloads windows and desktop state from the backend.
func (m *model) refresh() tea.Cmd {
	windows, err := m.backend.ListWindows()
	if err != nil {
		m.err = fmt.Errorf("failed to list windows: %w", err)
		return nil
	}
	state, err := m.backend.CurrentState()
	if err != nil {
		m.err = fmt.Errorf("failed to read desktop state: %w", err)
		return nil
	}
	m.err = nil
	m.state = state
	return m.list.SetItems(buildItems(windows))
}

func (m model) selected() (platform.Window, bool) {
	item, ok := m.list.SelectedItem().(windowItem)
	if !ok {
		return platform.Window{}, false
	}
	return item.win, true
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		// While the filter prompt is open every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.status = ""
			return m, m.refresh()
		case "enter":
			return m.act("focused", func(id platform.WindowID) error {
				if err := m.backend.Focus(id); err != nil {
					return err
				}
				return m.backend.Raise(id)
			})
		case "m":
			return m.act("minimized", m.backend.Minimize)
		case "a":
			return m.act("kept above", m.backend.MakeAbove)
		case "A":
			return m.act("no longer above", m.backend.UnmakeAbove)
		case "s":
			win, ok := m.selected()
			if !ok {
				return m, nil
			}
			if win.Workspace == platform.AllWorkspaces {
				return m.act("unstuck", m.backend.Unstick)
			}
			return m.act("stuck", m.backend.Stick)
		case "e":
			win, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.geometry = newGeometryForm(win)
			m.form = m.geometry.build(m.width - 4)
			m.editing = true
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// act runs fn against the selected window and refreshes the list.
func (m model) act(done string, fn func(platform.WindowID) error) (tea.Model, tea.Cmd) {
	win, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := fn(win.ID); err != nil {
		m.status = ""
		m.err = fmt.Errorf("0x%x: %w", uint32(win.ID), err)
		return m, nil
	}
	cmd := m.refresh()
	m.status = fmt.Sprintf("%s: %s", done, win.Name)
	return m, cmd
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.stopEditing()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.contentHeight())
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.applyGeometry()
	case huh.StateAborted:
		m.stopEditing()
		return m, nil
	}
	return m, cmd
}

func (m *model) stopEditing() {
	m.editing = false
	m.form = nil
	m.geometry = nil
}

func (m model) applyGeometry() (tea.Model, tea.Cmd) {
	g := m.geometry
	m.stopEditing()

	cmd, err := g.command()
	if err != nil {
		m.err = err
		return m, nil
	}
	found, failed, err := platform.ApplyMove(m.backend, cmd)
	switch {
	case err != nil:
		m.err = err
		return m, nil
	case !found:
		m.err = fmt.Errorf("window 0x%x is gone", uint32(cmd.ID))
		return m, m.refresh()
	case len(failed) > 0:
		refresh := m.refresh()
		m.err = fmt.Errorf("move partly failed: %v", failed[0])
		return m, refresh
	}
	refresh := m.refresh()
	m.status = fmt.Sprintf("moved to %dx%d+%d+%d", cmd.Width, cmd.Height, cmd.X, cmd.Y)
	return m, refresh
}

// contentHeight returns the height available for the list.
func (m model) contentHeight() int {
	// status bar (1) + help bar (1)
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.state, m.status, m.err, m.width)
	helpBar := renderHelpBar(m.editing, m.width)

	content := m.list.View()
	if m.editing && m.form != nil {
		content = lipgloss.NewStyle().
			Height(m.contentHeight()).
			Padding(1, 2).
			Render(m.form.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		content,
		helpBar,
	)
}
