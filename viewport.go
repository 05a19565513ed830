package tablegrid

import "github.com/pkg/errors"

// Viewport is the pixel size the document is rendered at.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointerEvent carries a pointer position in client pixels together with
// the top-left corner of the element hosting the document.
type PointerEvent struct {
	ClientX float64
	ClientY float64
	Left    float64 // Hosting element's left edge in client pixels
	Top     float64 // Hosting element's top edge in client pixels
}

// Validate checks the viewport has a positive size.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return errors.Wrapf(ErrInvalidViewport, "viewport is %gx%g", v.Width, v.Height)
	}
	return nil
}

// Normalize maps a pointer event into normalized document space. The result
// is not clamped; callers clamp against whatever bounds apply to them.
func (v Viewport) Normalize(ev PointerEvent) Point {
	offsetX := ev.ClientX - ev.Left
	offsetY := ev.ClientY - ev.Top
	return Point{
		X: offsetX / v.Width,
		Y: offsetY / v.Height,
	}
}

// ToPixel maps a normalized point back to element-relative pixels.
func (v Viewport) ToPixel(p Point) Point {
	return Point{
		X: p.X * v.Width,
		Y: p.Y * v.Height,
	}
}

// Threshold converts a pixel distance into its normalized equivalent on
// each axis at the current scale.
func (v Viewport) Threshold(px float64) (x, y float64) {
	return px / v.Width, px / v.Height
}
