package tablegrid

// RegionSelector turns a rectangle dragged out in element pixels into a
// normalized four-vertex bounding polygon, for marking where a table is
// before its grid is edited.
type RegionSelector struct {
	Viewport Viewport

	selecting bool
	start     Point // element pixels
	end       Point // element pixels
}

// Begin starts a selection at the pointer position.
func (r *RegionSelector) Begin(ev PointerEvent) {
	r.selecting = true
	r.start = Point{X: ev.ClientX - ev.Left, Y: ev.ClientY - ev.Top}
	r.end = r.start
}

// Update moves the free corner, clamped to the viewport. It does nothing
// unless a selection is in progress.
func (r *RegionSelector) Update(ev PointerEvent) {
	if !r.selecting {
		return
	}
	r.end = Point{
		X: clamp(ev.ClientX-ev.Left, 0, r.Viewport.Width),
		Y: clamp(ev.ClientY-ev.Top, 0, r.Viewport.Height),
	}
}

// Selecting reports whether a selection is in progress.
func (r *RegionSelector) Selecting() bool {
	return r.selecting
}

// Rect returns the current selection in element pixels as min/max corners.
func (r *RegionSelector) Rect() (min, max Point) {
	min = Point{X: r.start.X, Y: r.start.Y}
	max = Point{X: r.end.X, Y: r.end.Y}
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return min, max
}

// End finishes the selection and returns its polygon in normalized space,
// starting at the press point. It returns false if no selection was in
// progress.
func (r *RegionSelector) End() (BoundingPolygon, bool) {
	if !r.selecting {
		return BoundingPolygon{}, false
	}
	r.selecting = false
	w, h := r.Viewport.Width, r.Viewport.Height
	return BoundingPolygon{Vertices: []Point{
		{X: r.start.X / w, Y: r.start.Y / h},
		{X: r.end.X / w, Y: r.start.Y / h},
		{X: r.end.X / w, Y: r.end.Y / h},
		{X: r.start.X / w, Y: r.end.Y / h},
	}}, true
}

// Clear abandons any selection.
func (r *RegionSelector) Clear() {
	r.selecting = false
	r.start = Point{}
	r.end = Point{}
}
