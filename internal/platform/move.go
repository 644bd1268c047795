package platform

import (
	"fmt"
)

// MoveCommand is a request to reposition and restack one window.
type MoveCommand struct {
	ID       WindowID `json:"id"`
	Above    bool     `json:"above"`
	Minimize bool     `json:"minimize"`
	Stick    bool     `json:"stick"`
	Raise    bool     `json:"raise"`
	Focus    bool     `json:"focus"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
}

// Frame returns the requested frame rectangle.
func (c MoveCommand) Frame() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// StepError records one mutation that failed while applying a MoveCommand.
type StepError struct {
	Step string
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// ApplyMove runs the mutation sequence for cmd against the window it names.
// found is false when no live window has that ID, in which case nothing is
// touched. Lookup errors are returned as err; individual mutation failures do
// not stop later steps and are collected in failed.
//
// Order matters: minimize short-circuits the geometry step, and unmaximize
// must precede the move or the WM snaps the window back.
func ApplyMove(b Backend, cmd MoveCommand) (found bool, failed []StepError, err error) {
	_, found, err = b.FindWindow(cmd.ID)
	if err != nil {
		return false, nil, fmt.Errorf("failed to look up window %d: %w", cmd.ID, err)
	}
	if !found {
		return false, nil, nil
	}

	id := cmd.ID
	step := func(name string, fn func(WindowID) error) {
		if err := fn(id); err != nil {
			failed = append(failed, StepError{Step: name, Err: err})
		}
	}

	if cmd.Minimize {
		step("minimize", b.Minimize)
	} else {
		step("unminimize", b.Unminimize)
		step("unmaximize", b.Unmaximize)
		step("move_resize", func(id WindowID) error {
			return b.MoveResizeFrame(id, cmd.Frame())
		})
	}

	if cmd.Above {
		step("make_above", b.MakeAbove)
	} else {
		step("unmake_above", b.UnmakeAbove)
	}

	if cmd.Focus {
		step("focus", b.Focus)
	}
	if cmd.Raise {
		step("raise", b.Raise)
	}

	if cmd.Stick {
		step("stick", b.Stick)
	} else {
		step("unstick", b.Unstick)
	}

	return true, failed, nil
}
