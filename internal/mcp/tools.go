package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmhttp/internal/platform"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	var (
		windows []platform.Window
		err     error
	)
	s.withBackend(func() { windows, err = s.backend.ListWindows() })
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}
	if windows == nil {
		windows = []platform.Window{}
	}
	s.logger.Debug("list_windows", "count", len(windows))
	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleGetState(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStateInput) (*mcpsdk.CallToolResult, platform.DesktopState, error) {
	var (
		state platform.DesktopState
		err   error
	)
	s.withBackend(func() { state, err = s.backend.CurrentState() })
	if err != nil {
		return nil, platform.DesktopState{}, fmt.Errorf("failed to read desktop state: %w", err)
	}
	return nil, state, nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	cmd := args.command()

	var (
		found  bool
		failed []platform.StepError
		err    error
	)
	s.withBackend(func() { found, failed, err = platform.ApplyMove(s.backend, cmd) })
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	out := MoveWindowOutput{Found: found}
	for _, f := range failed {
		s.logger.Warn("move_window step failed", "window_id", cmd.ID, "step", f.Step, "error", f.Err)
		out.FailedSteps = append(out.FailedSteps, f.Step)
	}
	return nil, out, nil
}
