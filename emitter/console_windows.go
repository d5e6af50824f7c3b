//go:build windows

package emitter

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

// ATTACH_PARENT_PROCESS
const attachParentProcess = ^uintptr(0)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procAttachConsole    = kernel32.NewProc("AttachConsole")

	consoleOnce sync.Once
	consoleOut  *os.File
)

// writeConsole writes to the console of the parent process, if one exists.
// A GUI-subsystem process has no console of its own; attaching to the
// parent's lets a terminal launch see the picked color while a
// double-click launch stays silent.
func writeConsole(s string) error {
	consoleOnce.Do(func() {
		if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd == 0 {
			if ok, _, _ := procAttachConsole.Call(attachParentProcess); ok == 0 {
				return
			}
		}
		f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
		if err != nil {
			return
		}
		consoleOut = f
	})

	if consoleOut == nil {
		return nil
	}
	_, err := consoleOut.WriteString(s)
	return err
}
