package tablegrid

// Point is a position in normalized document space. Both coordinates are
// fractions of the document width/height, never pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LineType identifies which array of a TableStructure a line belongs to.
type LineType int

const (
	Vertical LineType = iota
	Horizontal
)

// String returns "vertical" or "horizontal".
func (t LineType) String() string {
	if t == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// LineRef addresses a single line inside a TableStructure.
type LineRef struct {
	Type  LineType
	Index int
}

// Line is a grid line described by exactly two vertices. Vertical lines
// share X across both vertices, horizontal lines share Y.
type Line struct {
	Vertices [2]Point `yaml:"vertices"`
}

// VerticalLine returns a vertical line at x spanning y0..y1.
func VerticalLine(x, y0, y1 float64) Line {
	return Line{Vertices: [2]Point{{X: x, Y: y0}, {X: x, Y: y1}}}
}

// HorizontalLine returns a horizontal line at y spanning x0..x1.
func HorizontalLine(y, x0, x1 float64) Line {
	return Line{Vertices: [2]Point{{X: x0, Y: y}, {X: x1, Y: y}}}
}

// Position returns the coordinate on the line's fixed axis.
func (l Line) Position(t LineType) float64 {
	if t == Horizontal {
		return l.Vertices[0].Y
	}
	return l.Vertices[0].X
}

// WithPosition returns a copy of the line with the fixed-axis coordinate of
// both vertices replaced by pos.
func (l Line) WithPosition(t LineType, pos float64) Line {
	out := l
	for i := range out.Vertices {
		if t == Horizontal {
			out.Vertices[i].Y = pos
		} else {
			out.Vertices[i].X = pos
		}
	}
	return out
}

// BoundingPolygon is the outer boundary of a table.
type BoundingPolygon struct {
	Vertices []Point `yaml:"vertices"`
}

// TableStructure is the committed, host-owned grid. Values are treated as
// immutable: every edit produces new slices.
type TableStructure struct {
	VerticalLines   []Line `yaml:"verticalLines"`
	HorizontalLines []Line `yaml:"horizontalLines"`
}

// Lines returns the slice holding lines of type t.
func (s TableStructure) Lines(t LineType) []Line {
	if t == Horizontal {
		return s.HorizontalLines
	}
	return s.VerticalLines
}

// Valid reports whether ref points at an existing line.
func (s TableStructure) Valid(ref LineRef) bool {
	return ref.Index >= 0 && ref.Index < len(s.Lines(ref.Type))
}

// Positions returns the fixed-axis coordinate of every line of type t.
func (s TableStructure) Positions(t LineType) []float64 {
	lines := s.Lines(t)
	positions := make([]float64, len(lines))
	for i, l := range lines {
		positions[i] = l.Position(t)
	}
	return positions
}

// withLines returns a copy of s whose lines of type t are replaced.
func (s TableStructure) withLines(t LineType, lines []Line) TableStructure {
	if t == Horizontal {
		s.HorizontalLines = lines
	} else {
		s.VerticalLines = lines
	}
	return s
}

// replaceLine returns a new structure with the referenced line swapped out.
// Other lines keep their values and the untouched slice is shared.
func (s TableStructure) replaceLine(ref LineRef, line Line) TableStructure {
	src := s.Lines(ref.Type)
	lines := make([]Line, len(src))
	copy(lines, src)
	lines[ref.Index] = line
	return s.withLines(ref.Type, lines)
}

// removeLine returns a new structure without the referenced line.
func (s TableStructure) removeLine(ref LineRef) TableStructure {
	src := s.Lines(ref.Type)
	lines := make([]Line, 0, len(src)-1)
	lines = append(lines, src[:ref.Index]...)
	lines = append(lines, src[ref.Index+1:]...)
	return s.withLines(ref.Type, lines)
}

// insertLine returns a new structure with line placed before the first
// existing line whose position is greater, keeping sorted input sorted.
// The returned ref is where the line landed; lines of type t at or after
// that index move up by one.
func (s TableStructure) insertLine(t LineType, line Line) (TableStructure, LineRef) {
	src := s.Lines(t)
	pos := line.Position(t)
	at := len(src)
	for i, l := range src {
		if l.Position(t) > pos {
			at = i
			break
		}
	}
	lines := make([]Line, 0, len(src)+1)
	lines = append(lines, src[:at]...)
	lines = append(lines, line)
	lines = append(lines, src[at:]...)
	return s.withLines(t, lines), LineRef{Type: t, Index: at}
}

// shiftedBy returns where r points after a line was inserted at added.
func (r LineRef) shiftedBy(added LineRef) LineRef {
	if r.Type == added.Type && r.Index >= added.Index {
		r.Index++
	}
	return r
}

// Side is one of the four bounding box edges, or SideNone.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
)

// String returns the lower-case edge name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "none"
	}
}

// ParseSide converts an edge name back into a Side.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "top":
		return SideTop, true
	case "right":
		return SideRight, true
	case "bottom":
		return SideBottom, true
	case "left":
		return SideLeft, true
	case "none", "":
		return SideNone, true
	}
	return SideNone, false
}

// LineType returns the orientation of lines inserted from this side.
func (s Side) LineType() LineType {
	if s == SideTop || s == SideBottom {
		return Horizontal
	}
	return Vertical
}
