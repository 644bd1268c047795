package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

const (
	wmStateRemove = 0
	wmStateAdd    = 1
)

// FrameExtents are the decoration sizes the WM draws around a client.
type FrameExtents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Grow returns client expanded by the extents.
func (e FrameExtents) Grow(client Rect) Rect {
	return Rect{
		X:      client.X - e.Left,
		Y:      client.Y - e.Top,
		Width:  client.Width + e.Left + e.Right,
		Height: client.Height + e.Top + e.Bottom,
	}
}

// ClientSize returns the client width and height that fill frame, never below 1.
func (e FrameExtents) ClientSize(frame Rect) (int, int) {
	return max(frame.Width-e.Left-e.Right, 1), max(frame.Height-e.Top-e.Bottom, 1)
}

// WindowRect returns the client area of a window in root coordinates.
func (c *Connection) WindowRect(windowID xproto.Window) (Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to translate coordinates of window %d: %w", windowID, err)
	}

	return Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// FrameRect returns the outer frame of a window, decorations included.
func (c *Connection) FrameRect(windowID xproto.Window) (Rect, error) {
	client, err := c.WindowRect(windowID)
	if err != nil {
		return Rect{}, err
	}
	return c.GetFrameExtents(windowID).Grow(client), nil
}

// GetFrameExtents returns the window decoration sizes, zero when the WM does
// not publish _NET_FRAME_EXTENTS.
func (c *Connection) GetFrameExtents(windowID xproto.Window) FrameExtents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return FrameExtents{}
	}
	return FrameExtents{
		Left:   int(extents.Left),
		Right:  int(extents.Right),
		Top:    int(extents.Top),
		Bottom: int(extents.Bottom),
	}
}

// WindowTypes returns the _NET_WM_WINDOW_TYPE atoms in preference order.
func (c *Connection) WindowTypes(windowID xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return types
}

// WindowStates returns the _NET_WM_STATE atoms set on a window.
func (c *Connection) WindowStates(windowID xproto.Window) []string {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return states
}

// HasState reports whether state is among the window's _NET_WM_STATE atoms.
func (c *Connection) HasState(windowID xproto.Window, state string) bool {
	for _, s := range c.WindowStates(windowID) {
		if s == state {
			return true
		}
	}
	return false
}

// WindowPID returns _NET_WM_PID, or 0 when unset.
func (c *Connection) WindowPID(windowID xproto.Window) int {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return 0
	}
	return int(pid)
}

// WindowTitle returns _NET_WM_NAME, falling back to WM_NAME.
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// MoveResizeFrame places the outer frame of a window at the given geometry.
// The request goes through _NET_MOVERESIZE_WINDOW so the WM applies it; when
// that message cannot be sent the window is configured directly.
func (c *Connection) MoveResizeFrame(windowID xproto.Window, frame Rect) error {
	width, height := c.GetFrameExtents(windowID).ClientSize(frame)

	return moveResizeWithFallback(
		func() error {
			return ewmh.MoveresizeWindow(c.XUtil, windowID, frame.X, frame.Y, width, height)
		},
		func() error {
			return xproto.ConfigureWindowChecked(
				c.XUtil.Conn(),
				windowID,
				xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
				[]uint32{uint32(frame.X), uint32(frame.Y), uint32(width), uint32(height)},
			).Check()
		},
	)
}

// moveResizeWithFallback runs viaWM and, if it fails, direct. The error is
// nil when either path succeeded.
func moveResizeWithFallback(viaWM, direct func() error) error {
	wmErr := viaWM()
	if wmErr == nil {
		return nil
	}
	if err := direct(); err != nil {
		return fmt.Errorf("_NET_MOVERESIZE_WINDOW failed (%v) and direct configure failed: %w", wmErr, err)
	}
	return nil
}

// Unmaximize removes both maximized states from a window.
func (c *Connection) Unmaximize(windowID xproto.Window) error {
	for _, state := range []string{"_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT"} {
		if err := ewmh.WmStateReq(c.XUtil, windowID, wmStateRemove, state); err != nil {
			return fmt.Errorf("failed to remove %s: %w", state, err)
		}
	}
	return nil
}

// SetAbove adds or removes _NET_WM_STATE_ABOVE.
func (c *Connection) SetAbove(windowID xproto.Window, above bool) error {
	action := wmStateRemove
	if above {
		action = wmStateAdd
	}
	if err := ewmh.WmStateReq(c.XUtil, windowID, action, "_NET_WM_STATE_ABOVE"); err != nil {
		return fmt.Errorf("failed to update _NET_WM_STATE_ABOVE: %w", err)
	}
	return nil
}

// Minimize iconifies a window via WM_CHANGE_STATE.
func (c *Connection) Minimize(windowID xproto.Window) error {
	const iconicState = 3
	if err := c.sendRootMessage(windowID, "WM_CHANGE_STATE", iconicState); err != nil {
		return fmt.Errorf("failed to minimize window %d: %w", windowID, err)
	}
	return nil
}

// Unminimize maps an iconified window, which ICCCM defines as the
// Iconic -> Normal transition. Windows that are not hidden are left alone.
func (c *Connection) Unminimize(windowID xproto.Window) error {
	if !c.HasState(windowID, "_NET_WM_STATE_HIDDEN") {
		return nil
	}
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return fmt.Errorf("failed to map window %d: %w", windowID, err)
	}
	return nil
}

// Raise puts a window on top of its stacking layer.
func (c *Connection) Raise(windowID xproto.Window) error {
	err := xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to raise window %d: %w", windowID, err)
	}
	return nil
}
