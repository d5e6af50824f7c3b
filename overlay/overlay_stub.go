//go:build !windows

package overlay

import (
	"image"

	"color-loupe/screenshot"
)

// Run fails on platforms without a layered, click-through window compositor.
func Run(cfg Config) error {
	return ErrCreateWindow
}

// RequestClose is a no-op when no overlay window exists.
func RequestClose() {}

// WorkAreaAt approximates the work area with the primary display bounds.
func WorkAreaAt(p image.Point) image.Rectangle {
	bounds, err := screenshot.PrimaryBounds()
	if err != nil {
		return image.Rectangle{}
	}
	return bounds
}
