package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/1broseidon/wmhttp/internal/platform"
	"github.com/1broseidon/wmhttp/internal/platform/platformtest"
)

func newTestServer(t *testing.T, windows ...platform.Window) (*Server, *platformtest.Fake) {
	t.Helper()
	fake := platformtest.NewFake(platform.DesktopState{
		CurrentWorkspace:       2,
		Monitor:                1,
		WorkAreaAllMonitors:    platform.Rect{Width: 3840, Height: 1080},
		WorkAreaCurrentMonitor: platform.Rect{X: 1920, Width: 1920, Height: 1080},
	}, windows...)
	s, err := NewServer(fake, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s, fake
}

func TestNewServer_RequiresBackend(t *testing.T) {
	if _, err := NewServer(nil, nil); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestListWindows(t *testing.T) {
	s, _ := newTestServer(t,
		platform.Window{ID: 1, Name: "editor", Width: 100, Height: 100},
		platform.Window{ID: 2, Name: "browser", Width: 200, Height: 200},
	)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 2 || out.Windows[1].Name != "browser" {
		t.Fatalf("windows = %+v", out.Windows)
	}
}

func TestListWindows_EmptyIsNotNil(t *testing.T) {
	s, _ := newTestServer(t)
	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if out.Windows == nil {
		t.Fatal("Windows is nil, want empty slice")
	}
}

func TestGetState(t *testing.T) {
	s, fake := newTestServer(t)
	_, got, err := s.handleGetState(context.Background(), nil, GetStateInput{})
	if err != nil {
		t.Fatalf("get_state: %v", err)
	}
	want, _ := fake.CurrentState()
	if got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}
}

func TestBackendErrorsPropagate(t *testing.T) {
	s, fake := newTestServer(t, platform.Window{ID: 1})
	fake.ListErr = errors.New("display gone")

	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{}); err == nil {
		t.Error("list_windows: expected error")
	}
	if _, _, err := s.handleGetState(context.Background(), nil, GetStateInput{}); err == nil {
		t.Error("get_state: expected error")
	}
	if _, _, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{ID: 1}); err == nil {
		t.Error("move_window: expected error")
	}
}

func TestMoveWindow(t *testing.T) {
	s, fake := newTestServer(t, platform.Window{ID: 7, Width: 50, Height: 50})

	_, out, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{
		ID: 7, Focus: true, X: 10, Y: 20, Width: 300, Height: 400,
	})
	if err != nil {
		t.Fatalf("move_window: %v", err)
	}
	if !out.Found || len(out.FailedSteps) != 0 {
		t.Fatalf("out = %+v", out)
	}

	want := []string{"unminimize", "unmaximize", "move_resize", "unmake_above", "focus", "unstick"}
	if got := fake.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	w, _ := fake.Window(7)
	if w.Frame() != (platform.Rect{X: 10, Y: 20, Width: 300, Height: 400}) {
		t.Fatalf("frame = %+v", w.Frame())
	}
}

func TestMoveWindow_UnknownID(t *testing.T) {
	s, fake := newTestServer(t, platform.Window{ID: 7})

	_, out, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{ID: 8, Minimize: true})
	if err != nil {
		t.Fatalf("move_window: %v", err)
	}
	if out.Found {
		t.Fatal("Found = true for unknown id")
	}
	if ops := fake.Ops(); len(ops) != 0 {
		t.Fatalf("ops = %v, want none", ops)
	}
}

func TestMoveWindow_ReportsFailedSteps(t *testing.T) {
	s, fake := newTestServer(t, platform.Window{ID: 7})
	fake.Fail["raise"] = errors.New("BadWindow")

	_, out, err := s.handleMoveWindow(context.Background(), nil, MoveWindowInput{ID: 7, Raise: true, Stick: true})
	if err != nil {
		t.Fatalf("move_window: %v", err)
	}
	if !reflect.DeepEqual(out.FailedSteps, []string{"raise"}) {
		t.Fatalf("FailedSteps = %v", out.FailedSteps)
	}
	if !fake.Sticky(7) {
		t.Fatal("stick did not run after raise failed")
	}
}
