package loupe

import (
	"image"
	"image/color"
)

// stroke is used for both the ring and the center marker; white reads well
// over arbitrary screen content once magnified.
var stroke = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// CaptureSide returns the side length of the square screen region that
// magnifies to a loupe of the given diameter. The side is always odd so the
// cursor maps to an exact center pixel.
func CaptureSide(diameter, zoom int) int {
	if zoom < 1 {
		zoom = 1
	}
	side := diameter / zoom
	if side < 1 {
		side = 1
	}
	if side%2 == 0 {
		side++
	}
	return side
}

// Compositor turns a captured screen square into the loupe frame: a magnified
// circular image with an opaque interior, a transparent exterior, a ring
// stroke at the boundary and a center pixel marker.
//
// The output frame is owned by the Compositor and reused across calls; callers
// must treat the returned image as read-only and must not hold it across
// Compose calls.
type Compositor struct {
	diameter int
	radius   int
	border   int
	marker   int
	frame    *image.RGBA
}

func NewCompositor(diameter, border, marker int) *Compositor {
	if diameter < 2 {
		diameter = 2
	}
	if border < 1 {
		border = 1
	}
	return &Compositor{
		diameter: diameter,
		radius:   diameter / 2,
		border:   border,
		marker:   marker,
	}
}

// Compose produces the loupe frame for one captured square. The frame buffer
// is fully cleared first: the stretch alone does not rewrite pixels outside
// the source mapping and the mask only clears outside the circle, so skipping
// the clear would leak pixels from the previous tick at the edges.
func (c *Compositor) Compose(src *image.RGBA) *image.RGBA {
	if c.frame == nil {
		c.frame = image.NewRGBA(image.Rect(0, 0, c.diameter, c.diameter))
	}
	for i := range c.frame.Pix {
		c.frame.Pix[i] = 0
	}

	if src != nil && !src.Bounds().Empty() {
		c.stretch(src)
	}
	c.maskCircle()
	c.drawRing()
	c.drawMarker()

	return c.frame
}

// stretch magnifies src into the full frame with nearest-neighbor sampling.
// Iterating destination pixels guarantees every frame pixel is written even
// when the diameter is not an exact multiple of the source side.
func (c *Compositor) stretch(src *image.RGBA) {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	d := c.diameter

	for y := 0; y < d; y++ {
		sy := sb.Min.Y + y*sh/d
		for x := 0; x < d; x++ {
			sx := sb.Min.X + x*sw/d
			c.frame.SetRGBA(x, y, src.RGBAAt(sx, sy))
		}
	}
}

// maskCircle makes the interior of the circle fully opaque and everything
// outside fully transparent black. GDI-style stretching carries no alpha, so
// this runs after the stretch.
func (c *Compositor) maskCircle() {
	r2 := c.radius * c.radius
	cx, cy := c.radius, c.radius

	for y := 0; y < c.diameter; y++ {
		dy := y - cy
		for x := 0; x < c.diameter; x++ {
			dx := x - cx
			i := c.frame.PixOffset(x, y)
			if dx*dx+dy*dy <= r2 {
				c.frame.Pix[i+3] = 0xFF
			} else {
				c.frame.Pix[i] = 0
				c.frame.Pix[i+1] = 0
				c.frame.Pix[i+2] = 0
				c.frame.Pix[i+3] = 0
			}
		}
	}
}

// drawRing strokes the circle boundary. The stroke is inset by half its width
// so the mask never clips it: it covers distances [radius-border, radius].
func (c *Compositor) drawRing() {
	outer2 := c.radius * c.radius
	inner := c.radius - c.border
	if inner < 0 {
		inner = 0
	}
	inner2 := inner * inner
	cx, cy := c.radius, c.radius

	for y := 0; y < c.diameter; y++ {
		dy := y - cy
		for x := 0; x < c.diameter; x++ {
			dx := x - cx
			d2 := dx*dx + dy*dy
			if d2 <= outer2 && d2 >= inner2 {
				c.frame.SetRGBA(x, y, stroke)
			}
		}
	}
}

// drawMarker fills a small square at the frame center marking the exact pixel
// under the cursor.
func (c *Compositor) drawMarker() {
	m := c.marker
	if m <= 0 {
		return
	}
	cx, cy := c.radius, c.radius

	for y := cy - m/2; y < cy-m/2+m; y++ {
		for x := cx - m/2; x < cx-m/2+m; x++ {
			c.frame.SetRGBA(x, y, stroke)
		}
	}
}
