package screenshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kbinani/screenshot"
)

// VirtualBounds returns the union of all active display bounds.
func VirtualBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	union := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}
	return union, nil
}

// PrimaryBounds returns the bounds of the primary display (display 0).
func PrimaryBounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	return screenshot.GetDisplayBounds(0), nil
}

// CaptureSquare captures a side×side square of the screen centered on the
// given point. The square is shifted to stay inside the virtual screen, so a
// cursor at a monitor edge returns boundary pixel data rather than an error.
func CaptureSquare(center image.Point, side int) (*image.RGBA, error) {
	if side <= 0 {
		return nil, fmt.Errorf("invalid capture side: %d", side)
	}

	bounds, err := VirtualBounds()
	if err != nil {
		return nil, err
	}

	rect := clampSquare(bounds, center, side)
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}
	return img, nil
}

// PixelAt reads the exact color of a single screen pixel.
func PixelAt(p image.Point) (color.RGBA, error) {
	bounds, err := VirtualBounds()
	if err != nil {
		return color.RGBA{}, err
	}

	rect := clampSquare(bounds, p, 1)
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to capture pixel: %v", err)
	}
	return img.RGBAAt(img.Bounds().Min.X, img.Bounds().Min.Y), nil
}

// clampSquare centers a side×side rectangle on p, shifted as needed to stay
// inside bounds. When the square is larger than bounds it is reduced to the
// overlap, so the capture call never reads outside the screen.
func clampSquare(bounds image.Rectangle, p image.Point, side int) image.Rectangle {
	half := side / 2
	r := image.Rect(p.X-half, p.Y-half, p.X-half+side, p.Y-half+side)

	if r.Max.X > bounds.Max.X {
		r = r.Add(image.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Add(image.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}

	return r.Intersect(bounds)
}
