// Package platformtest provides an in-memory platform.Backend for tests.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// Call records one mutation made against the fake.
type Call struct {
	Op    string
	ID    platform.WindowID
	Frame platform.Rect
}

// Fake is a window manager held in memory. Mutations update the stored
// windows so tests can assert on resulting state as well as on call order.
type Fake struct {
	mu      sync.Mutex
	windows []platform.Window
	state   platform.DesktopState

	minimized map[platform.WindowID]bool
	maximized map[platform.WindowID]bool
	above     map[platform.WindowID]bool
	sticky    map[platform.WindowID]bool
	focused   platform.WindowID
	calls     []Call

	// Fail makes the named operation return an error.
	Fail map[string]error
	// ListErr is returned from ListWindows, FindWindow and CurrentState when set.
	ListErr error
}

// NewFake returns a fake seeded with windows and state.
func NewFake(state platform.DesktopState, windows ...platform.Window) *Fake {
	f := &Fake{
		windows:   append([]platform.Window(nil), windows...),
		state:     state,
		minimized: make(map[platform.WindowID]bool),
		maximized: make(map[platform.WindowID]bool),
		above:     make(map[platform.WindowID]bool),
		sticky:    make(map[platform.WindowID]bool),
		Fail:      make(map[string]error),
	}
	for _, w := range windows {
		if w.IsHidden {
			f.minimized[w.ID] = true
		}
		if w.Workspace == platform.AllWorkspaces {
			f.sticky[w.ID] = true
		}
	}
	return f
}

var _ platform.Backend = (*Fake)(nil)

// SetMaximized marks a window as maximized on both axes.
func (f *Fake) SetMaximized(id platform.WindowID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.maximized[id] = true
}

// Calls returns the recorded mutation sequence.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Ops returns only the operation names of the recorded calls.
func (f *Fake) Ops() []string {
	calls := f.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Op
	}
	return ops
}

func (f *Fake) Minimized(id platform.WindowID) bool { return f.flag(f.minimized, id) }
func (f *Fake) Maximized(id platform.WindowID) bool { return f.flag(f.maximized, id) }
func (f *Fake) Above(id platform.WindowID) bool     { return f.flag(f.above, id) }
func (f *Fake) Sticky(id platform.WindowID) bool    { return f.flag(f.sticky, id) }

// Focused returns the window that last received focus.
func (f *Fake) Focused() platform.WindowID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// Window returns the current snapshot of id.
func (f *Fake) Window(id platform.WindowID) (platform.Window, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexOf(id)
	if i < 0 {
		return platform.Window{}, false
	}
	return f.snapshot(i), true
}

func (f *Fake) ListWindows() ([]platform.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]platform.Window, len(f.windows))
	for i := range f.windows {
		out[i] = f.snapshot(i)
	}
	return out, nil
}

func (f *Fake) CurrentState() (platform.DesktopState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return platform.DesktopState{}, f.ListErr
	}
	return f.state, nil
}

func (f *Fake) FindWindow(id platform.WindowID) (platform.Window, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return platform.Window{}, false, f.ListErr
	}
	i := f.indexOf(id)
	if i < 0 {
		return platform.Window{}, false, nil
	}
	return f.snapshot(i), true, nil
}

func (f *Fake) Minimize(id platform.WindowID) error {
	return f.mutate("minimize", id, platform.Rect{}, func() { f.minimized[id] = true })
}

func (f *Fake) Unminimize(id platform.WindowID) error {
	return f.mutate("unminimize", id, platform.Rect{}, func() { delete(f.minimized, id) })
}

func (f *Fake) Unmaximize(id platform.WindowID) error {
	return f.mutate("unmaximize", id, platform.Rect{}, func() { delete(f.maximized, id) })
}

func (f *Fake) MoveResizeFrame(id platform.WindowID, frame platform.Rect) error {
	return f.mutate("move_resize", id, frame, func() {
		w := &f.windows[f.indexOf(id)]
		w.X, w.Y, w.Width, w.Height = frame.X, frame.Y, frame.Width, frame.Height
	})
}

func (f *Fake) MakeAbove(id platform.WindowID) error {
	return f.mutate("make_above", id, platform.Rect{}, func() { f.above[id] = true })
}

func (f *Fake) UnmakeAbove(id platform.WindowID) error {
	return f.mutate("unmake_above", id, platform.Rect{}, func() { delete(f.above, id) })
}

func (f *Fake) Focus(id platform.WindowID) error {
	return f.mutate("focus", id, platform.Rect{}, func() { f.focused = id })
}

func (f *Fake) Raise(id platform.WindowID) error {
	return f.mutate("raise", id, platform.Rect{}, func() {
		i := f.indexOf(id)
		w := f.windows[i]
		f.windows = append(f.windows[:i], f.windows[i+1:]...)
		f.windows = append(f.windows, w)
	})
}

func (f *Fake) Stick(id platform.WindowID) error {
	return f.mutate("stick", id, platform.Rect{}, func() { f.sticky[id] = true })
}

func (f *Fake) Unstick(id platform.WindowID) error {
	return f.mutate("unstick", id, platform.Rect{}, func() { delete(f.sticky, id) })
}

func (f *Fake) mutate(op string, id platform.WindowID, frame platform.Rect, apply func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, ID: id, Frame: frame})
	if err := f.Fail[op]; err != nil {
		return err
	}
	if f.indexOf(id) < 0 {
		return fmt.Errorf("window %d not found", id)
	}
	apply()
	return nil
}

func (f *Fake) flag(m map[platform.WindowID]bool, id platform.WindowID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return m[id]
}

func (f *Fake) indexOf(id platform.WindowID) int {
	for i := range f.windows {
		if f.windows[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Fake) snapshot(i int) platform.Window {
	w := f.windows[i]
	w.IsHidden = f.minimized[w.ID]
	if f.sticky[w.ID] {
		w.Workspace = platform.AllWorkspaces
	} else if w.Workspace == platform.AllWorkspaces {
		w.Workspace = f.state.CurrentWorkspace
	}
	return w
}
