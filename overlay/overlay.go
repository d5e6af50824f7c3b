package overlay

import (
	"errors"
	"image"
	"time"
)

// ErrCreateWindow is returned when the overlay window cannot be created; the
// process has nothing to show and should exit with a failure code.
var ErrCreateWindow = errors.New("failed to create overlay window")

// Frame is one composited loupe image together with its on-screen position.
type Frame struct {
	Image *image.RGBA
	Pos   image.Point
}

// Config describes the overlay window. OnTick runs on the window's message
// loop once per timer tick and produces the next frame; returning ok=false
// skips the redraw for that tick.
type Config struct {
	Size   int
	Tick   time.Duration
	OnTick func() (Frame, bool)
}

// ClampToWorkArea positions a size×size window at desired, shifted so the
// whole rectangle stays inside the work area. Far edges are corrected first,
// then near edges, so the left/top bounds always hold.
func ClampToWorkArea(desired image.Point, size int, work image.Rectangle) image.Rectangle {
	x, y := desired.X, desired.Y

	if x+size > work.Max.X {
		x = work.Max.X - size
	}
	if y+size > work.Max.Y {
		y = work.Max.Y - size
	}
	if x < work.Min.X {
		x = work.Min.X
	}
	if y < work.Min.Y {
		y = work.Min.Y
	}

	return image.Rect(x, y, x+size, y+size)
}
