//go:build windows

package hook

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14
	hcAction     = 0

	wmKeyDown     = 0x0100
	wmSysKeyDown  = 0x0104
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202

	vkShift = 0x10
)

// KBDLLHOOKSTRUCT
type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
)

// Hook state is global: the process installs exactly one mouse and one
// keyboard hook for its lifetime, and the low-level callbacks carry no user
// pointer. Callbacks are dispatched on the installing thread's message loop.
var (
	handlers      Handlers
	mouseHook     uintptr
	keyboardHook  uintptr
	uninstallOnce sync.Once
)

// Install registers system-wide low-level mouse and keyboard hooks on the
// calling thread. The thread must pump messages for the callbacks to fire.
func Install(h Handlers) error {
	handlers = h

	mh, _, err := procSetWindowsHookExW.Call(whMouseLL, syscall.NewCallback(mouseProc), 0, 0)
	if mh == 0 {
		return fmt.Errorf("failed to install mouse hook: %v", err)
	}
	kh, _, err := procSetWindowsHookExW.Call(whKeyboardLL, syscall.NewCallback(keyboardProc), 0, 0)
	if kh == 0 {
		procUnhookWindowsHookEx.Call(mh)
		return fmt.Errorf("failed to install keyboard hook: %v", err)
	}

	mouseHook = mh
	keyboardHook = kh
	return nil
}

// Uninstall removes both hooks. Idempotent: every shutdown path calls it, and
// a leaked global hook degrades input latency system-wide.
func Uninstall() {
	uninstallOnce.Do(func() {
		if keyboardHook != 0 {
			procUnhookWindowsHookEx.Call(keyboardHook)
			keyboardHook = 0
		}
		if mouseHook != 0 {
			procUnhookWindowsHookEx.Call(mouseHook)
			mouseHook = 0
		}
	})
}

func mouseProc(nCode, wParam, lParam uintptr) uintptr {
	if int32(nCode) == hcAction {
		switch wParam {
		case wmLButtonDown:
			if handlers.OnCommit != nil {
				handlers.OnCommit()
			}
			return 1 // swallow to avoid clicking whatever lies beneath the loupe
		case wmLButtonUp:
			// Swallow the paired release too; an orphan button-up would still
			// reach the window under the loupe.
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, nCode, wParam, lParam)
	return ret
}

func keyboardProc(nCode, wParam, lParam uintptr) uintptr {
	if int32(nCode) == hcAction && (wParam == wmKeyDown || wParam == wmSysKeyDown) {
		ks := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		switch ks.VkCode {
		case KeyEscape:
			if handlers.OnCancel != nil {
				handlers.OnCancel()
			}
			return 1
		case KeyLeft, KeyRight, KeyUp, KeyDown:
			step := stepFor(shiftDown(), handlers)
			if dx, dy, ok := NudgeDelta(int(ks.VkCode), step); ok && handlers.OnNudge != nil {
				handlers.OnNudge(dx, dy)
			}
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, nCode, wParam, lParam)
	return ret
}

func shiftDown() bool {
	state, _, _ := procGetAsyncKeyState.Call(vkShift)
	return state&0x8000 != 0
}
