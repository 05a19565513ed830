package tablegrid

// History keeps undo and redo stacks of full structure snapshots.
type History struct {
	undo  []TableStructure // oldest first, most recent last
	redo  []TableStructure // most recently undone first
	limit int
}

// NewHistory creates a history that keeps at most limit undo entries.
// A limit of zero or less keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Commit records prev, the state before a mutation, and drops any redo
// entries.
func (h *History) Commit(prev TableStructure) {
	h.undo = append(h.undo, prev)
	h.redo = nil
	h.trim()
}

// Undo pops the most recent entry and returns it as the new current state.
// current is pushed onto the redo stack. It returns false on an empty stack.
func (h *History) Undo(current TableStructure) (TableStructure, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	last := len(h.undo) - 1
	entry := h.undo[last]
	h.undo = h.undo[:last]
	h.redo = append([]TableStructure{current}, h.redo...)
	return entry, true
}

// Redo pops the front redo entry and returns it as the new current state.
// current is pushed onto the undo stack. It returns false on an empty stack.
func (h *History) Redo(current TableStructure) (TableStructure, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	entry := h.redo[0]
	h.redo = h.redo[1:]
	h.undo = append(h.undo, current)
	h.trim()
	return entry, true
}

// CanUndo reports whether there is a state to step back to.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone state can be reapplied.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Clear drops all entries.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// trim evicts the oldest undo entries beyond the limit.
func (h *History) trim() {
	if h.limit <= 0 || len(h.undo) <= h.limit {
		return
	}
	h.undo = append([]TableStructure(nil), h.undo[len(h.undo)-h.limit:]...)
}
