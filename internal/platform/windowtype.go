package platform

var ewmhWindowTypes = map[string]WindowType{
	"_NET_WM_WINDOW_TYPE_NORMAL":        WindowTypeNormal,
	"_NET_WM_WINDOW_TYPE_DESKTOP":       WindowTypeDesktop,
	"_NET_WM_WINDOW_TYPE_DOCK":          WindowTypeDock,
	"_NET_WM_WINDOW_TYPE_DIALOG":        WindowTypeDialog,
	"_NET_WM_WINDOW_TYPE_TOOLBAR":       WindowTypeToolbar,
	"_NET_WM_WINDOW_TYPE_MENU":          WindowTypeMenu,
	"_NET_WM_WINDOW_TYPE_UTILITY":       WindowTypeUtility,
	"_NET_WM_WINDOW_TYPE_SPLASH":        WindowTypeSplashscreen,
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU": WindowTypeDropdownMenu,
	"_NET_WM_WINDOW_TYPE_POPUP_MENU":    WindowTypePopupMenu,
	"_NET_WM_WINDOW_TYPE_TOOLTIP":       WindowTypeTooltip,
	"_NET_WM_WINDOW_TYPE_NOTIFICATION":  WindowTypeNotification,
	"_NET_WM_WINDOW_TYPE_COMBO":         WindowTypeCombo,
	"_NET_WM_WINDOW_TYPE_DND":           WindowTypeDND,
}

// windowTypeFromEWMH picks the first recognised type atom. Modal dialogs are
// dialogs carrying _NET_WM_STATE_MODAL.
func windowTypeFromEWMH(types []string, states []string) WindowType {
	wt := WindowTypeNormal
	for _, t := range types {
		if mapped, ok := ewmhWindowTypes[t]; ok {
			wt = mapped
			break
		}
	}

	if wt == WindowTypeDialog && hasAtom(states, "_NET_WM_STATE_MODAL") {
		return WindowTypeModalDialog
	}
	return wt
}

func hasAtom(atoms []string, name string) bool {
	for _, a := range atoms {
		if a == name {
			return true
		}
	}
	return false
}
