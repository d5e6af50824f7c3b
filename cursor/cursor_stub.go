//go:build !windows

package cursor

import "image"

// Pos reports no cursor on platforms without the win32 input subsystem.
func Pos() (image.Point, bool) {
	return image.Point{}, false
}

// Move is a no-op on platforms without the win32 input subsystem.
func Move(p image.Point) bool {
	return false
}
