package tablegrid

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// BoundingBox is the axis-aligned envelope of a BoundingPolygon.
type BoundingBox struct {
	MinX   float64
	MinY   float64
	MaxX   float64
	MaxY   float64
	Width  float64
	Height float64
}

// BoundingBoxOf derives the axis-aligned envelope of the given vertices.
// It fails with ErrInvalidGeometry for fewer than three vertices or for a
// degenerate (zero width or height) envelope.
func BoundingBoxOf(vertices []Point) (BoundingBox, error) {
	if len(vertices) < 3 {
		return BoundingBox{}, errors.Wrapf(ErrInvalidGeometry, "polygon has %d vertices, need at least 3", len(vertices))
	}

	xs := make([]float64, len(vertices))
	ys := make([]float64, len(vertices))
	for i, v := range vertices {
		xs[i] = v.X
		ys[i] = v.Y
	}

	box := BoundingBox{
		MinX: floats.Min(xs),
		MinY: floats.Min(ys),
		MaxX: floats.Max(xs),
		MaxY: floats.Max(ys),
	}
	box.Width = box.MaxX - box.MinX
	box.Height = box.MaxY - box.MinY

	if box.Width <= 0 || box.Height <= 0 {
		return BoundingBox{}, errors.Wrapf(ErrInvalidGeometry, "polygon envelope is %gx%g", box.Width, box.Height)
	}
	return box, nil
}

// Min returns the lower bound of the box on the axis a line of type t moves along.
func (b BoundingBox) Min(t LineType) float64 {
	if t == Horizontal {
		return b.MinY
	}
	return b.MinX
}

// Max returns the upper bound of the box on the axis a line of type t moves along.
func (b BoundingBox) Max(t LineType) float64 {
	if t == Horizontal {
		return b.MaxY
	}
	return b.MaxX
}

// Clamp restricts a line position to the box on the line's drag axis.
func (b BoundingBox) Clamp(t LineType, v float64) float64 {
	return clamp(v, b.Min(t), b.Max(t))
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// SpanLine builds a line of type t at pos covering the full box on its
// free axis.
func (b BoundingBox) SpanLine(t LineType, pos float64) Line {
	if t == Horizontal {
		return HorizontalLine(pos, b.MinX, b.MaxX)
	}
	return VerticalLine(pos, b.MinY, b.MaxY)
}

// Polygon returns the box as a clockwise four-vertex polygon starting at
// the top-left corner.
func (b BoundingBox) Polygon() BoundingPolygon {
	return BoundingPolygon{Vertices: []Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}}
}
