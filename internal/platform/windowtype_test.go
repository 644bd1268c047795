package platform

import "testing"

func TestWindowTypeFromEWMH(t *testing.T) {
	tests := []struct {
		name   string
		types  []string
		states []string
		want   WindowType
	}{
		{"no type set", nil, nil, WindowTypeNormal},
		{"normal", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, nil, WindowTypeNormal},
		{"dock", []string{"_NET_WM_WINDOW_TYPE_DOCK"}, nil, WindowTypeDock},
		{"unknown then utility", []string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE", "_NET_WM_WINDOW_TYPE_UTILITY"}, nil, WindowTypeUtility},
		{"first recognised wins", []string{"_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_NORMAL"}, nil, WindowTypeDialog},
		{"modal dialog", []string{"_NET_WM_WINDOW_TYPE_DIALOG"}, []string{"_NET_WM_STATE_MODAL"}, WindowTypeModalDialog},
		{"modal state on normal window", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, []string{"_NET_WM_STATE_MODAL"}, WindowTypeNormal},
		{"splash", []string{"_NET_WM_WINDOW_TYPE_SPLASH"}, nil, WindowTypeSplashscreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTypeFromEWMH(tt.types, tt.states); got != tt.want {
				t.Fatalf("windowTypeFromEWMH(%v, %v) = %d, want %d", tt.types, tt.states, got, tt.want)
			}
		})
	}
}

func TestWindowTypeWireValues(t *testing.T) {
	// Clients depend on these integers.
	if WindowTypeNormal != 0 || WindowTypeDock != 2 || WindowTypeModalDialog != 4 ||
		WindowTypeSplashscreen != 8 || WindowTypeNotification != 12 || WindowTypeOverrideOther != 15 {
		t.Fatal("window type enum values changed")
	}
}
