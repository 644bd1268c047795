package mcp

import "github.com/1broseidon/wmhttp/internal/platform"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool. Tool results must
// be objects, so the window array is wrapped.
type ListWindowsOutput struct {
	Windows []platform.Window `json:"windows"`
}

// GetStateInput is the input for the get_state tool.
type GetStateInput struct{}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID       uint32 `json:"id" jsonschema:"required,Window id as returned by list_windows"`
	Above    bool   `json:"above,omitempty" jsonschema:"Keep the window above others (false clears it)"`
	Minimize bool   `json:"minimize,omitempty" jsonschema:"Minimize instead of moving; geometry is ignored"`
	Stick    bool   `json:"stick,omitempty" jsonschema:"Show the window on all workspaces (false clears it)"`
	Raise    bool   `json:"raise,omitempty" jsonschema:"Raise the window to the top of the stack"`
	Focus    bool   `json:"focus,omitempty" jsonschema:"Give the window keyboard focus"`
	X        int    `json:"x,omitempty" jsonschema:"Frame left edge in root coordinates"`
	Y        int    `json:"y,omitempty" jsonschema:"Frame top edge in root coordinates"`
	Width    int    `json:"width,omitempty" jsonschema:"Frame width in pixels"`
	Height   int    `json:"height,omitempty" jsonschema:"Frame height in pixels"`
}

func (in MoveWindowInput) command() platform.MoveCommand {
	return platform.MoveCommand{
		ID:       platform.WindowID(in.ID),
		Above:    in.Above,
		Minimize: in.Minimize,
		Stick:    in.Stick,
		Raise:    in.Raise,
		Focus:    in.Focus,
		X:        in.X,
		Y:        in.Y,
		Width:    in.Width,
		Height:   in.Height,
	}
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Found bool `json:"found"`
	// FailedSteps names mutations the window manager rejected.
	FailedSteps []string `json:"failed_steps,omitempty"`
}
