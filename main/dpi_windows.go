//go:build windows

package main

import "golang.org/x/sys/windows"

// enableDPIAwareness negotiates per-monitor DPI awareness, falling back
// through two capability tiers: SetProcessDpiAwarenessContext with
// per-monitor-v2 (Win10 1703+), then legacy SetProcessDPIAware. Failures are
// silent; the loupe is simply blurry on scaled monitors.
func enableDPIAwareness() {
	user32 := windows.NewLazySystemDLL("user32.dll")

	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 = (HANDLE)-4
	const perMonitorAwareV2 = ^uintptr(3)
	setContext := user32.NewProc("SetProcessDpiAwarenessContext")
	if setContext.Find() == nil {
		if ret, _, _ := setContext.Call(perMonitorAwareV2); ret != 0 {
			return
		}
	}

	setAware := user32.NewProc("SetProcessDPIAware")
	if setAware.Find() == nil {
		setAware.Call()
	}
}
