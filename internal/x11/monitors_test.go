package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		ok   bool
	}{
		{"overlap", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, Rect{50, 50, 50, 50}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}, Rect{10, 10, 20, 20}, true},
		{"touching edges", Rect{0, 0, 100, 100}, Rect{100, 0, 100, 100}, Rect{}, false},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Intersect = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMonitorIndexAt(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, Bounds: Rect{0, 0, 1920, 1080}},
		{ID: 1, Bounds: Rect{1920, 0, 2560, 1440}},
	}
	if got := MonitorIndexAt(monitors, 100, 100); got != 0 {
		t.Errorf("MonitorIndexAt(100,100) = %d, want 0", got)
	}
	if got := MonitorIndexAt(monitors, 1920, 0); got != 1 {
		t.Errorf("MonitorIndexAt(1920,0) = %d, want 1", got)
	}
	if got := MonitorIndexAt(monitors, 5000, 5000); got != -1 {
		t.Errorf("MonitorIndexAt(5000,5000) = %d, want -1", got)
	}
}

func TestUpdateStruts_OnlyCountsOverlappingMonitor(t *testing.T) {
	left := Rect{0, 0, 1920, 1080}
	right := Rect{1920, 0, 1920, 1080}
	rootW, rootH := 3840, 1080

	// A 32px top panel spanning only the left monitor.
	panel := &ewmh.WmStrutPartial{Top: 32, TopStartX: 0, TopEndX: 1919}

	var accLeft, accRight dockStruts
	updateStruts(left, rootW, rootH, panel, &accLeft)
	updateStruts(right, rootW, rootH, panel, &accRight)

	if accLeft.top != 32 {
		t.Errorf("left monitor top strut = %d, want 32", accLeft.top)
	}
	if accRight != (dockStruts{}) {
		t.Errorf("right monitor struts = %+v, want none", accRight)
	}
}

func TestShrinkByStruts(t *testing.T) {
	area := Rect{0, 0, 1920, 1080}
	if shrinkByStruts(&area, dockStruts{}) {
		t.Fatal("shrinkByStruts reported change with no struts")
	}

	area = Rect{0, 0, 1920, 1080}
	if !shrinkByStruts(&area, dockStruts{left: 48, top: 32}) {
		t.Fatal("shrinkByStruts reported no change")
	}
	want := Rect{48, 32, 1872, 1048}
	if area != want {
		t.Fatalf("area = %+v, want %+v", area, want)
	}
}

func TestFrameExtents(t *testing.T) {
	ext := FrameExtents{Left: 2, Right: 2, Top: 30, Bottom: 2}

	frame := ext.Grow(Rect{100, 130, 300, 400})
	if want := (Rect{98, 100, 304, 432}); frame != want {
		t.Fatalf("Grow = %+v, want %+v", frame, want)
	}

	w, h := ext.ClientSize(Rect{10, 20, 300, 400})
	if w != 296 || h != 368 {
		t.Fatalf("ClientSize = %d,%d; want 296,368", w, h)
	}

	w, h = ext.ClientSize(Rect{0, 0, 1, 1})
	if w != 1 || h != 1 {
		t.Fatalf("ClientSize of tiny frame = %d,%d; want 1,1", w, h)
	}
}

func TestPickActiveMonitor(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, Bounds: Rect{0, 0, 1920, 1080}},
		{ID: 1, Bounds: Rect{1920, 0, 1920, 1080}},
	}
	onRight := &Rect{X: 2000, Y: 100, Width: 800, Height: 600}

	tests := []struct {
		name    string
		pointer *[2]int
		active  *Rect
		want    int
	}{
		{"pointer wins", &[2]int{100, 100}, onRight, 0},
		{"pointer off-screen uses active window", &[2]int{-50, -50}, onRight, 1},
		{"no pointer uses active window", nil, onRight, 1},
		{"active window off-screen", nil, &Rect{X: 9000, Y: 9000, Width: 10, Height: 10}, 0},
		{"nothing known", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickActiveMonitor(monitors, tt.pointer, tt.active); got != tt.want {
				t.Fatalf("pickActiveMonitor = %d, want %d", got, tt.want)
			}
		})
	}
}
