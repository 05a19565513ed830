package tablegrid

// DragState is the in-progress move of a single line. Live is the clamped
// position the line is previewed at; the committed structure is untouched
// until the drag ends.
type DragState struct {
	Ref  LineRef
	Live float64
}

// dragEngine tracks at most one line drag.
type dragEngine struct {
	active *DragState
}

func (d *dragEngine) dragging() bool {
	return d.active != nil
}

// begin starts dragging ref. Calls while a drag is active, or for a line
// that does not exist, are ignored.
func (d *dragEngine) begin(ref LineRef, s TableStructure, box BoundingBox) bool {
	if d.active != nil || !s.Valid(ref) {
		return false
	}
	pos := s.Lines(ref.Type)[ref.Index].Position(ref.Type)
	d.active = &DragState{Ref: ref, Live: box.Clamp(ref.Type, pos)}
	return true
}

// update moves the live position to p on the drag axis, clamped to box.
func (d *dragEngine) update(p Point, box BoundingBox) (DragState, bool) {
	if d.active == nil {
		return DragState{}, false
	}
	v := p.X
	if d.active.Ref.Type == Horizontal {
		v = p.Y
	}
	d.active.Live = box.Clamp(d.active.Ref.Type, v)
	return *d.active, true
}

// end finishes the drag. It returns the committed structure, or false when
// there was no drag or the dragged line no longer exists.
func (d *dragEngine) end(s TableStructure, box BoundingBox) (TableStructure, bool) {
	if d.active == nil {
		return s, false
	}
	state := *d.active
	d.active = nil

	if !s.Valid(state.Ref) {
		return s, false
	}
	line := s.Lines(state.Ref.Type)[state.Ref.Index]
	live := box.Clamp(state.Ref.Type, state.Live)
	return s.replaceLine(state.Ref, line.WithPosition(state.Ref.Type, live)), true
}

// follow keeps the drag on the same line after a line was inserted at
// added. It reports whether the dragged index changed.
func (d *dragEngine) follow(added LineRef) bool {
	if d.active == nil {
		return false
	}
	next := d.active.Ref.shiftedBy(added)
	if next == d.active.Ref {
		return false
	}
	d.active.Ref = next
	return true
}

func (d *dragEngine) cancel() {
	d.active = nil
}

func (d *dragEngine) state() (DragState, bool) {
	if d.active == nil {
		return DragState{}, false
	}
	return *d.active, true
}
