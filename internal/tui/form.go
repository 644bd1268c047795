package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/wmhttp/internal/platform"
)

// geometryForm holds the string values huh binds to while editing a window's
// placement; they are converted on submit.
type geometryForm struct {
	id platform.WindowID

	fX      string
	fY      string
	fWidth  string
	fHeight string
	fAbove  bool
	fStick  bool
}

func newGeometryForm(w platform.Window) *geometryForm {
	f := w.Frame()
	return &geometryForm{
		id:      w.ID,
		fX:      strconv.Itoa(f.X),
		fY:      strconv.Itoa(f.Y),
		fWidth:  strconv.Itoa(f.Width),
		fHeight: strconv.Itoa(f.Height),
		fStick:  w.Workspace == platform.AllWorkspaces,
	}
}

func (g *geometryForm) build(width int) *huh.Form {
	if width < 40 {
		width = 40
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("x").
				Title("X").
				Description("Frame left edge").
				Validate(validateInt).
				Value(&g.fX),
			huh.NewInput().
				Key("y").
				Title("Y").
				Description("Frame top edge").
				Validate(validateInt).
				Value(&g.fY),
			huh.NewInput().
				Key("width").
				Title("Width").
				Validate(validateSize).
				Value(&g.fWidth),
			huh.NewInput().
				Key("height").
				Title("Height").
				Validate(validateSize).
				Value(&g.fHeight),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("above").
				Title("Keep above other windows?").
				Value(&g.fAbove),
			huh.NewConfirm().
				Key("stick").
				Title("Show on all workspaces?").
				Value(&g.fStick),
		),
	).WithWidth(width).WithShowHelp(true).WithShowErrors(true)
}

// command converts the submitted values. The window is focused and raised so
// the result is visible.
func (g *geometryForm) command() (platform.MoveCommand, error) {
	vals := make([]int, 4)
	for i, s := range []string{g.fX, g.fY, g.fWidth, g.fHeight} {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return platform.MoveCommand{}, fmt.Errorf("invalid number %q", s)
		}
		vals[i] = n
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return platform.MoveCommand{}, fmt.Errorf("width and height must be positive")
	}
	return platform.MoveCommand{
		ID:     g.id,
		Above:  g.fAbove,
		Stick:  g.fStick,
		Focus:  true,
		Raise:  true,
		X:      vals[0],
		Y:      vals[1],
		Width:  vals[2],
		Height: vals[3],
	}, nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

func validateSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}
