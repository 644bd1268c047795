package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowType classifies a window. Values are stable on the wire.
type WindowType int

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDesktop
	WindowTypeDock
	WindowTypeDialog
	WindowTypeModalDialog
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeUtility
	WindowTypeSplashscreen
	WindowTypeDropdownMenu
	WindowTypePopupMenu
	WindowTypeTooltip
	WindowTypeNotification
	WindowTypeCombo
	WindowTypeDND
	WindowTypeOverrideOther
)

// AllWorkspaces is reported as the workspace of windows shown on every workspace.
const AllWorkspaces = -1

// Window is a snapshot of one managed window.
type Window struct {
	ID           WindowID   `json:"id"`
	PID          int        `json:"pid"`
	Name         string     `json:"name"`
	Monitor      int        `json:"monitor"`
	Workspace    int        `json:"workspace"`
	Type         WindowType `json:"type"`
	IsFullscreen bool       `json:"isFullscreen"`
	IsHidden     bool       `json:"isHidden"`
	X            int        `json:"x"`
	Y            int        `json:"y"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
}

// Frame returns the outer frame rectangle of the window.
func (w Window) Frame() Rect {
	return Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// DesktopState describes the active workspace and monitor layout.
type DesktopState struct {
	CurrentWorkspace       int  `json:"currentWorkspace"`
	Monitor                int  `json:"monitor"`
	WorkAreaAllMonitors    Rect `json:"workAreaAllMonitors"`
	WorkAreaCurrentMonitor Rect `json:"workAreaCurrentMonitor"`
}

// Backend abstracts the window manager: live queries plus per-window mutations.
// Mutations address a window by ID; callers look it up with FindWindow first.
type Backend interface {
	ListWindows() ([]Window, error)
	CurrentState() (DesktopState, error)
	FindWindow(id WindowID) (Window, bool, error)

	Minimize(id WindowID) error
	Unminimize(id WindowID) error
	Unmaximize(id WindowID) error
	MoveResizeFrame(id WindowID, frame Rect) error
	MakeAbove(id WindowID) error
	UnmakeAbove(id WindowID) error
	Focus(id WindowID) error
	Raise(id WindowID) error
	Stick(id WindowID) error
	Unstick(id WindowID) error
}
