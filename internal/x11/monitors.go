package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Rect is a rectangle in root window coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o, and false when they do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	Bounds Rect
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:   len(monitors),
			Name: outputName,
			Bounds: Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	return monitors, nil
}

// MonitorIndexAt returns the index of the monitor containing the point, or -1.
func MonitorIndexAt(monitors []Monitor, x, y int) int {
	for i := range monitors {
		if monitors[i].Bounds.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ActiveMonitorIndex returns the index into monitors of the monitor under the
// pointer. Falls back to the monitor holding the active window, then to 0.
func (c *Connection) ActiveMonitorIndex(monitors []Monitor) int {
	if len(monitors) == 0 {
		return 0
	}

	var pointer *[2]int
	if reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		pointer = &[2]int{int(reply.RootX), int(reply.RootY)}
	}

	var active *Rect
	if win, err := c.GetActiveWindow(); err == nil && win != 0 {
		if rect, err := c.WindowRect(win); err == nil {
			active = &rect
		}
	}

	return pickActiveMonitor(monitors, pointer, active)
}

// pickActiveMonitor applies the pointer, then active window centre, then 0
// precedence. Either input may be nil.
func pickActiveMonitor(monitors []Monitor, pointer *[2]int, active *Rect) int {
	if pointer != nil {
		if i := MonitorIndexAt(monitors, pointer[0], pointer[1]); i >= 0 {
			return i
		}
	}
	if active != nil {
		cx, cy := active.X+active.Width/2, active.Y+active.Height/2
		if i := MonitorIndexAt(monitors, cx, cy); i >= 0 {
			return i
		}
	}
	return 0
}

// MonitorWorkArea returns the usable area of monitor on desktop, excluding
// dock struts. When no dock reserves space the EWMH work area is intersected
// with the monitor bounds instead.
func (c *Connection) MonitorWorkArea(monitor Monitor, desktop int) Rect {
	area := monitor.Bounds
	if applyDockStruts(c, &area) {
		return area
	}

	wa, err := c.WorkArea(desktop)
	if err != nil {
		return area
	}
	if isect, ok := area.Intersect(wa); ok {
		return isect
	}
	return area
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func applyDockStruts(c *Connection, area *Rect) bool {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			updateStruts(*area, rootWidth, rootHeight, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			updateStruts(*area, rootWidth, rootHeight, fullStrut(s, rootWidth, rootHeight), &struts)
		}
	}

	return shrinkByStruts(area, struts)
}

func fullStrut(s *ewmh.WmStrut, rootWidth, rootHeight int) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:         s.Left,
		Right:        s.Right,
		Top:          s.Top,
		Bottom:       s.Bottom,
		LeftStartY:   0,
		LeftEndY:     uint(rootHeight - 1),
		RightStartY:  0,
		RightEndY:    uint(rootHeight - 1),
		TopStartX:    0,
		TopEndX:      uint(rootWidth - 1),
		BottomStartX: 0,
		BottomEndX:   uint(rootWidth - 1),
	}
}

func shrinkByStruts(area *Rect, struts dockStruts) bool {
	if struts.left == 0 && struts.right == 0 && struts.top == 0 && struts.bottom == 0 {
		return false
	}

	area.X += struts.left
	area.Y += struts.top
	area.Width -= struts.left + struts.right
	area.Height -= struts.top + struts.bottom

	if area.Width < 1 {
		area.Width = 1
	}
	if area.Height < 1 {
		area.Height = 1
	}
	return true
}

// updateStruts folds one dock's reserved edges into acc, counting only the
// part of each strut that overlaps the monitor.
func updateStruts(monitor Rect, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
	if sp.Top > 0 {
		strut := Rect{X: int(sp.TopStartX), Y: 0, Width: int(sp.TopEndX) + 1 - int(sp.TopStartX), Height: int(sp.Top)}
		if isect, ok := monitor.Intersect(strut); ok {
			acc.top = max(acc.top, isect.Height)
		}
	}

	// Bottom strut: y=[rootHeight-Bottom,rootHeight), x=[BottomStartX,BottomEndX]
	if sp.Bottom > 0 {
		strut := Rect{X: int(sp.BottomStartX), Y: rootHeight - int(sp.Bottom), Width: int(sp.BottomEndX) + 1 - int(sp.BottomStartX), Height: int(sp.Bottom)}
		if isect, ok := monitor.Intersect(strut); ok {
			acc.bottom = max(acc.bottom, isect.Height)
		}
	}

	// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
	if sp.Left > 0 {
		strut := Rect{X: 0, Y: int(sp.LeftStartY), Width: int(sp.Left), Height: int(sp.LeftEndY) + 1 - int(sp.LeftStartY)}
		if isect, ok := monitor.Intersect(strut); ok {
			acc.left = max(acc.left, isect.Width)
		}
	}

	// Right strut: x=[rootWidth-Right,rootWidth), y=[RightStartY,RightEndY]
	if sp.Right > 0 {
		strut := Rect{X: rootWidth - int(sp.Right), Y: int(sp.RightStartY), Width: int(sp.Right), Height: int(sp.RightEndY) + 1 - int(sp.RightStartY)}
		if isect, ok := monitor.Intersect(strut); ok {
			acc.right = max(acc.right, isect.Width)
		}
	}
}
