package tablegrid

// selection holds the currently selected line, if any.
type selection struct {
	ref *LineRef
}

// set selects ref and reports whether the selection changed.
func (s *selection) set(ref LineRef) bool {
	if s.ref != nil && *s.ref == ref {
		return false
	}
	s.ref = &ref
	return true
}

// clear drops the selection and reports whether there was one.
func (s *selection) clear() bool {
	if s.ref == nil {
		return false
	}
	s.ref = nil
	return true
}

func (s *selection) current() (LineRef, bool) {
	if s.ref == nil {
		return LineRef{}, false
	}
	return *s.ref, true
}

// follow keeps the selection on the same line after a line was inserted
// at added. It reports whether the selected index changed.
func (s *selection) follow(added LineRef) bool {
	if s.ref == nil {
		return false
	}
	next := s.ref.shiftedBy(added)
	if next == *s.ref {
		return false
	}
	s.ref = &next
	return true
}

// snapshot returns a copy safe to hand to the host.
func (s *selection) snapshot() *LineRef {
	if s.ref == nil {
		return nil
	}
	ref := *s.ref
	return &ref
}

// deleteSelected removes the selected line from st. It returns false when
// nothing is selected or the selection no longer points at a line.
func (s *selection) deleteSelected(st TableStructure) (TableStructure, bool) {
	ref, ok := s.current()
	if !ok || !st.Valid(ref) {
		return st, false
	}
	return st.removeLine(ref), true
}
