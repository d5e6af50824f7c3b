//go:build windows

package cursor

import (
	"image"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos = user32.NewProc("SetCursorPos")
)

// Pos returns the current cursor position in screen coordinates.
func Pos() (image.Point, bool) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return image.Point{}, false
	}
	return image.Pt(int(pt.X), int(pt.Y)), true
}

// Move places the system cursor at p. Off-screen coordinates are clamped by
// the OS.
func Move(p image.Point) bool {
	ret, _, _ := procSetCursorPos.Call(uintptr(p.X), uintptr(p.Y))
	return ret != 0
}
