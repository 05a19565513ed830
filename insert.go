package tablegrid

import "math"

// Hover is the edge the insertion affordance is shown for and the point the
// host should anchor that control at.
type Hover struct {
	Side   Side
	Anchor Point
}

// hoveredSide returns the box edge p is within threshold of. The pointer
// must be inside the box. Near corners the first match in top, right,
// bottom, left order wins.
func hoveredSide(p Point, box BoundingBox, thresholdX, thresholdY float64) Side {
	if !box.Contains(p) {
		return SideNone
	}
	switch {
	case p.Y-box.MinY <= thresholdY:
		return SideTop
	case box.MaxX-p.X <= thresholdX:
		return SideRight
	case box.MaxY-p.Y <= thresholdY:
		return SideBottom
	case p.X-box.MinX <= thresholdX:
		return SideLeft
	}
	return SideNone
}

// anchorFor projects p onto the given box edge.
func anchorFor(side Side, p Point, box BoundingBox) Point {
	switch side {
	case SideTop:
		return Point{X: p.X, Y: box.MinY}
	case SideRight:
		return Point{X: box.MaxX, Y: p.Y}
	case SideBottom:
		return Point{X: p.X, Y: box.MaxY}
	case SideLeft:
		return Point{X: box.MinX, Y: p.Y}
	}
	return Point{}
}

// insertionPosition finds where a new line goes when inserting from side.
// It takes the existing parallel line nearest to that edge (strictly inside
// it) and returns the midpoint of the gap between the two. The insert is
// rejected when no such line exists or the gap is not wider than minGap.
func insertionPosition(side Side, positions []float64, box BoundingBox, minGap float64) (float64, bool) {
	var edge, dir float64
	switch side {
	case SideTop:
		edge, dir = box.MinY, 1
	case SideBottom:
		edge, dir = box.MaxY, -1
	case SideLeft:
		edge, dir = box.MinX, 1
	case SideRight:
		edge, dir = box.MaxX, -1
	default:
		return 0, false
	}

	nearest := math.Inf(1)
	for _, pos := range positions {
		gap := (pos - edge) * dir
		if gap > 0 && gap < nearest {
			nearest = gap
		}
	}
	if math.IsInf(nearest, 1) || nearest <= minGap {
		return 0, false
	}
	return edge + dir*nearest/2, true
}

// insertFrom returns s with a new line added next to side and the ref of
// the new line, or false when there is no room.
func insertFrom(side Side, s TableStructure, box BoundingBox, minGap float64) (TableStructure, LineRef, bool) {
	if side == SideNone {
		return s, LineRef{}, false
	}
	t := side.LineType()
	pos, ok := insertionPosition(side, s.Positions(t), box, minGap)
	if !ok {
		return s, LineRef{}, false
	}
	next, added := s.insertLine(t, box.SpanLine(t, pos))
	return next, added, true
}
