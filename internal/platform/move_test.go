package platform_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/1broseidon/wmhttp/internal/platform"
	"github.com/1broseidon/wmhttp/internal/platform/platformtest"
)

func newFake() *platformtest.Fake {
	return platformtest.NewFake(
		platform.DesktopState{CurrentWorkspace: 1},
		platform.Window{ID: 10, Name: "editor", Workspace: 1, X: 0, Y: 0, Width: 800, Height: 600},
		platform.Window{ID: 11, Name: "browser", Workspace: 0, X: 5, Y: 5, Width: 100, Height: 100},
	)
}

func TestApplyMove_Order(t *testing.T) {
	tests := []struct {
		name string
		cmd  platform.MoveCommand
		want []string
	}{
		{
			name: "geometry only",
			cmd:  platform.MoveCommand{ID: 10, X: 1, Y: 2, Width: 3, Height: 4},
			want: []string{"unminimize", "unmaximize", "move_resize", "unmake_above", "unstick"},
		},
		{
			name: "minimize skips geometry",
			cmd:  platform.MoveCommand{ID: 10, Minimize: true, X: 1, Y: 2, Width: 3, Height: 4},
			want: []string{"minimize", "unmake_above", "unstick"},
		},
		{
			name: "all flags",
			cmd:  platform.MoveCommand{ID: 10, Above: true, Focus: true, Raise: true, Stick: true},
			want: []string{"unminimize", "unmaximize", "move_resize", "make_above", "focus", "raise", "stick"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			found, failed, err := platform.ApplyMove(f, tt.cmd)
			if err != nil {
				t.Fatalf("ApplyMove error: %v", err)
			}
			if !found {
				t.Fatal("ApplyMove found = false, want true")
			}
			if len(failed) != 0 {
				t.Fatalf("failed steps = %v, want none", failed)
			}
			if got := f.Ops(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ops = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyMove_UnknownIDTouchesNothing(t *testing.T) {
	f := newFake()
	found, failed, err := platform.ApplyMove(f, platform.MoveCommand{ID: 999, Minimize: true})
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if found {
		t.Fatal("found = true for unknown id")
	}
	if failed != nil {
		t.Fatalf("failed = %v, want nil", failed)
	}
	if ops := f.Ops(); len(ops) != 0 {
		t.Fatalf("ops = %v, want none", ops)
	}
}

func TestApplyMove_FailingStepDoesNotAbort(t *testing.T) {
	f := newFake()
	boom := errors.New("boom")
	f.Fail["unmaximize"] = boom

	_, failed, err := platform.ApplyMove(f, platform.MoveCommand{ID: 11, X: 10, Y: 20, Width: 30, Height: 40, Stick: true})
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if len(failed) != 1 || failed[0].Step != "unmaximize" || !errors.Is(failed[0], boom) {
		t.Fatalf("failed = %v, want one unmaximize failure", failed)
	}

	w, _ := f.Window(11)
	if got := w.Frame(); got != (platform.Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Fatalf("frame = %+v, want moved despite failure", got)
	}
	if !f.Sticky(11) {
		t.Fatal("window not sticky; later steps should still run")
	}
}

func TestApplyMove_LookupError(t *testing.T) {
	f := newFake()
	f.ListErr = errors.New("display gone")
	if _, _, err := platform.ApplyMove(f, platform.MoveCommand{ID: 10}); err == nil {
		t.Fatal("expected lookup error")
	}
	if ops := f.Ops(); len(ops) != 0 {
		t.Fatalf("ops = %v, want none", ops)
	}
}
