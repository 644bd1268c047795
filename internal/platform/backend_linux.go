//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/wmhttp/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop runs the X11 event loop until Quit is called.
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// Quit stops EventLoop.
func (b *LinuxBackend) Quit() {
	if b != nil && b.conn != nil {
		b.conn.Quit()
	}
}

// ListWindows returns every managed window across all desktops and monitors,
// in client-list order.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := conn.ClientList()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, windowID := range clients {
		w, ok := b.snapshot(conn, monitors, windowID)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// CurrentState reports the active desktop, active monitor and work areas.
func (b *LinuxBackend) CurrentState() (DesktopState, error) {
	conn, err := b.connection()
	if err != nil {
		return DesktopState{}, err
	}

	desktop, err := conn.GetCurrentDesktop()
	if err != nil {
		return DesktopState{}, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return DesktopState{}, err
	}

	all, err := conn.WorkArea(desktop)
	if err != nil {
		return DesktopState{}, err
	}

	state := DesktopState{
		CurrentWorkspace:       desktop,
		WorkAreaAllMonitors:    rectFromX11(all),
		WorkAreaCurrentMonitor: rectFromX11(all),
	}
	if len(monitors) > 0 {
		state.Monitor = conn.ActiveMonitorIndex(monitors)
		state.WorkAreaCurrentMonitor = rectFromX11(conn.MonitorWorkArea(monitors[state.Monitor], desktop))
	}
	return state, nil
}

// FindWindow returns the live window with the given ID, if it is managed.
func (b *LinuxBackend) FindWindow(id WindowID) (Window, bool, error) {
	conn, err := b.connection()
	if err != nil {
		return Window{}, false, err
	}

	clients, err := conn.ClientList()
	if err != nil {
		return Window{}, false, err
	}

	for _, windowID := range clients {
		if WindowID(windowID) != id {
			continue
		}
		monitors, err := conn.GetMonitors()
		if err != nil {
			return Window{}, false, err
		}
		w, ok := b.snapshot(conn, monitors, windowID)
		return w, ok, nil
	}
	return Window{}, false, nil
}

// Minimize minimizes a window via WM_CHANGE_STATE.
func (b *LinuxBackend) Minimize(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.Minimize(xproto.Window(id)) })
}

// Unminimize restores an iconified window.
func (b *LinuxBackend) Unminimize(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.Unminimize(xproto.Window(id)) })
}

// Unmaximize clears horizontal and vertical maximization.
func (b *LinuxBackend) Unmaximize(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.Unmaximize(xproto.Window(id)) })
}

// MoveResizeFrame moves and resizes a window so its outer frame matches frame.
func (b *LinuxBackend) MoveResizeFrame(id WindowID, frame Rect) error {
	return b.do(func(c *x11.Connection) error {
		return c.MoveResizeFrame(xproto.Window(id), x11.Rect(frame))
	})
}

// MakeAbove keeps a window above normal windows.
func (b *LinuxBackend) MakeAbove(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.SetAbove(xproto.Window(id), true) })
}

// UnmakeAbove returns a window to the normal layer.
func (b *LinuxBackend) UnmakeAbove(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.SetAbove(xproto.Window(id), false) })
}

// Focus activates a window.
func (b *LinuxBackend) Focus(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.FocusWindow(xproto.Window(id)) })
}

// Raise restacks a window on top of its layer.
func (b *LinuxBackend) Raise(id WindowID) error {
	return b.do(func(c *x11.Connection) error { return c.Raise(xproto.Window(id)) })
}

// Stick shows a window on all desktops.
func (b *LinuxBackend) Stick(id WindowID) error {
	return b.do(func(c *x11.Connection) error {
		return c.SetWindowDesktop(xproto.Window(id), x11.OnAllDesktops)
	})
}

// Unstick pins a sticky window to the current desktop. Windows already on a
// single desktop are left where they are.
func (b *LinuxBackend) Unstick(id WindowID) error {
	return b.do(func(c *x11.Connection) error {
		desktop, err := c.GetWindowDesktop(xproto.Window(id))
		if err != nil || desktop != AllWorkspaces {
			return nil
		}
		current, err := c.GetCurrentDesktop()
		if err != nil {
			return err
		}
		return c.SetWindowDesktop(xproto.Window(id), uint32(current))
	})
}

func (b *LinuxBackend) snapshot(conn *x11.Connection, monitors []x11.Monitor, windowID xproto.Window) (Window, bool) {
	frame, err := conn.FrameRect(windowID)
	if err != nil {
		// Window vanished between the client list read and now.
		return Window{}, false
	}

	workspace, err := conn.GetWindowDesktop(windowID)
	if err != nil {
		workspace = 0
	}

	monitor := x11.MonitorIndexAt(monitors, frame.X+frame.Width/2, frame.Y+frame.Height/2)
	if monitor < 0 {
		monitor = 0
	}

	states := conn.WindowStates(windowID)

	return Window{
		ID:           WindowID(windowID),
		PID:          conn.WindowPID(windowID),
		Name:         conn.WindowTitle(windowID),
		Monitor:      monitor,
		Workspace:    workspace,
		Type:         windowTypeFromEWMH(conn.WindowTypes(windowID), states),
		IsFullscreen: hasAtom(states, "_NET_WM_STATE_FULLSCREEN"),
		IsHidden:     hasAtom(states, "_NET_WM_STATE_HIDDEN"),
		X:            frame.X,
		Y:            frame.Y,
		Width:        frame.Width,
		Height:       frame.Height,
	}, true
}

func (b *LinuxBackend) do(fn func(*x11.Connection) error) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return fn(conn)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func rectFromX11(r x11.Rect) Rect {
	return Rect(r)
}
