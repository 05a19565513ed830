package tablegrid

import (
	"log"
	"sync"

	"github.com/pkg/errors"
)

// TargetKind says what a pointer-down landed on.
type TargetKind int

const (
	TargetEmpty TargetKind = iota
	TargetLine
	TargetEdge
)

// Target identifies what a pointer-down hit: a line, the insertion edge
// region of the bounding box, or empty canvas.
type Target struct {
	Kind TargetKind
	Line LineRef
	Side Side
}

// LineTarget is a pointer-down on the line at index of type t.
func LineTarget(t LineType, index int) Target {
	return Target{Kind: TargetLine, Line: LineRef{Type: t, Index: index}}
}

// EdgeTarget is a pointer-down on the edge region of side.
func EdgeTarget(side Side) Target {
	return Target{Kind: TargetEdge, Side: side}
}

// EmptyTarget is a pointer-down on empty canvas.
func EmptyTarget() Target {
	return Target{Kind: TargetEmpty}
}

// Callbacks receive editor output. Any field may be nil. Callbacks run after
// the editor has released its lock, so they may call back into the editor.
type Callbacks struct {
	// OnStructureChanged fires on every committed mutation: drag commit,
	// insert, delete, undo and redo.
	OnStructureChanged func(vertical, horizontal []Line)

	// OnSelectionChanged fires with nil when the selection is cleared.
	OnSelectionChanged func(sel *LineRef)

	// OnHoverAffordanceChanged fires with SideNone when the affordance hides.
	OnHoverAffordanceChanged func(side Side, anchor Point)

	// OnHistoryAvailability fires after every commit, undo and redo with
	// the current undo and redo availability.
	OnHistoryAvailability func(canUndo, canRedo bool)

	// OnDragPreview fires as a dragged line's live position moves.
	OnDragPreview func(ref LineRef, position float64)
}

// interaction is the transient, per-session gesture state kept apart from
// the committed structure.
type interaction struct {
	drag      dragEngine
	selection selection
	hover     Hover
	hideTimer Timer
	hideGen   uint64
}

// Editor is one table-structure editing session. The host forwards pointer
// and keyboard events and renders from the callbacks.
type Editor struct {
	mu sync.Mutex

	config    Config
	callbacks Callbacks

	structure TableStructure
	box       BoundingBox
	viewport  Viewport

	session interaction
	history *History

	outbox []func()
}

// NewEditor starts a session over structure. It fails with
// ErrInvalidGeometry or ErrInvalidViewport when the inputs cannot be edited.
func NewEditor(structure TableStructure, polygon BoundingPolygon, viewport Viewport, config Config, callbacks Callbacks) (*Editor, error) {
	e := &Editor{
		config:    config,
		callbacks: callbacks,
		history:   NewHistory(config.HistoryLimit),
	}
	if err := e.load(structure, polygon, viewport); err != nil {
		return nil, errors.Wrap(err, "failed to start editing session")
	}
	return e, nil
}

// Load replaces the session inputs after an external update. The bounding
// box is derived again from polygon. History is kept. A selection or drag
// whose line type gained or lost lines is dropped, since its index may now
// name a different line.
func (e *Editor) Load(structure TableStructure, polygon BoundingPolygon, viewport Viewport) error {
	var err error
	e.do(func() {
		prev := e.structure
		if err = e.load(structure, polygon, viewport); err != nil {
			return
		}
		if state, ok := e.session.drag.state(); ok && !sameLayout(prev, e.structure, state.Ref.Type) {
			e.abandonDrag("load")
		}
		e.dropMovedSelection(prev)
	})
	return err
}

func (e *Editor) load(structure TableStructure, polygon BoundingPolygon, viewport Viewport) error {
	box, err := BoundingBoxOf(polygon.Vertices)
	if err != nil {
		return err
	}
	if err := viewport.Validate(); err != nil {
		return err
	}
	e.structure = structure
	e.box = box
	e.viewport = viewport
	return nil
}

// PointerDown handles a press. Pressing a line starts dragging it and
// selects it; pressing empty canvas clears the selection; pressing the edge
// region keeps the insert affordance up for that side.
func (e *Editor) PointerDown(target Target, ev PointerEvent) {
	e.do(func() {
		switch target.Kind {
		case TargetLine:
			if !e.session.drag.begin(target.Line, e.structure, e.box) {
				if !e.structure.Valid(target.Line) {
					e.logf("ignoring press on stale %s line %d", target.Line.Type, target.Line.Index)
				}
				return
			}
			if e.session.selection.set(target.Line) {
				e.emitSelection()
			}
		case TargetEdge:
			if target.Side == SideNone {
				return
			}
			e.cancelHide()
			p := e.viewport.Normalize(ev)
			e.setHover(Hover{Side: target.Side, Anchor: anchorFor(target.Side, p, e.box)})
		default:
			if e.session.selection.clear() {
				e.emitSelection()
			}
		}
	})
}

// PointerMove updates the live position of the line being dragged. It does
// nothing when no drag is active.
func (e *Editor) PointerMove(ev PointerEvent) {
	e.do(func() {
		state, ok := e.session.drag.update(e.viewport.Normalize(ev), e.box)
		if !ok {
			return
		}
		if cb := e.callbacks.OnDragPreview; cb != nil {
			e.outbox = append(e.outbox, func() { cb(state.Ref, state.Live) })
		}
	})
}

// PointerUp commits the active drag. It does nothing when no drag is active.
func (e *Editor) PointerUp() {
	e.do(e.endDrag)
}

// PointerLeaveViewport commits the active drag exactly like PointerUp.
func (e *Editor) PointerLeaveViewport() {
	e.do(e.endDrag)
}

func (e *Editor) endDrag() {
	state, dragging := e.session.drag.state()
	next, ok := e.session.drag.end(e.structure, e.box)
	if !ok {
		if dragging {
			e.logf("dropping drag of stale %s line %d", state.Ref.Type, state.Ref.Index)
		}
		return
	}
	e.commit("move", next)
}

// EdgeHover tracks the pointer over the bounding box to show or hide the
// insert affordance. Leaving the edge region hides it only after the
// configured delay; coming back first cancels the hide.
func (e *Editor) EdgeHover(ev PointerEvent) {
	e.do(func() {
		p := e.viewport.Normalize(ev)
		tx, ty := e.viewport.Threshold(e.config.EdgeThresholdPx)
		side := hoveredSide(p, e.box, tx, ty)
		if side != SideNone {
			e.cancelHide()
			e.setHover(Hover{Side: side, Anchor: anchorFor(side, p, e.box)})
			return
		}
		if e.session.hover.Side == SideNone || e.session.hideTimer != nil {
			return
		}
		e.scheduleHide()
	})
}

// InsertLine adds a line next to the edge the affordance is showing for.
func (e *Editor) InsertLine() {
	e.do(func() {
		e.insert(e.session.hover.Side)
	})
}

// InsertLineAt adds a line next to side regardless of hover state.
func (e *Editor) InsertLineAt(side Side) {
	e.do(func() {
		e.insert(side)
	})
}

func (e *Editor) insert(side Side) {
	next, added, ok := insertFrom(side, e.structure, e.box, e.config.MinInsertGap)
	if !ok {
		if side != SideNone {
			e.logf("no room to insert a line at the %s edge", side)
		}
		return
	}
	e.commit("insert "+side.String(), next)

	// Lines after the new one moved up an index.
	if e.session.selection.follow(added) {
		e.emitSelection()
	}
	if e.session.drag.follow(added) {
		state, _ := e.session.drag.state()
		if cb := e.callbacks.OnDragPreview; cb != nil {
			e.outbox = append(e.outbox, func() { cb(state.Ref, state.Live) })
		}
	}
}

// DeleteSelected removes the selected line and clears the selection.
func (e *Editor) DeleteSelected() {
	e.do(func() {
		next, ok := e.session.selection.deleteSelected(e.structure)
		if !ok {
			return
		}
		e.commit("delete", next)
		e.session.selection.clear()
		e.emitSelection()
		e.abandonDrag("delete")
	})
}

// Undo restores the state before the last committed mutation.
func (e *Editor) Undo() {
	e.do(func() {
		prev, ok := e.history.Undo(e.structure)
		if !ok {
			return
		}
		e.restore("undo", prev)
	})
}

// Redo reapplies the last undone mutation.
func (e *Editor) Redo() {
	e.do(func() {
		next, ok := e.history.Redo(e.structure)
		if !ok {
			return
		}
		e.restore("redo", next)
	})
}

// Close ends the session: pending timers are stopped and all transient
// state and history are reset.
func (e *Editor) Close() {
	e.do(func() {
		e.cancelHide()
		e.session.drag.cancel()
		e.session.selection.clear()
		e.session.hover = Hover{}
		e.history.Clear()
	})
}

// Structure returns the committed structure.
func (e *Editor) Structure() TableStructure {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.structure
}

// BoundingBox returns the box derived from the current polygon.
func (e *Editor) BoundingBox() BoundingBox {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.box
}

// Selection returns the selected line, or nil.
func (e *Editor) Selection() *LineRef {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.selection.snapshot()
}

// Hover returns the edge the insert affordance is showing for.
func (e *Editor) Hover() Hover {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.hover
}

// Drag returns the active drag, if any.
func (e *Editor) Drag() (DragState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.drag.state()
}

// CanUndo reports whether Undo would change the structure.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change the structure.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanRedo()
}

// do runs fn under the lock and then delivers queued callbacks.
func (e *Editor) do(fn func()) {
	e.mu.Lock()
	fn()
	out := e.outbox
	e.outbox = nil
	e.mu.Unlock()

	for _, notify := range out {
		notify()
	}
}

// commit is the single path that changes the committed structure from an
// edit: the previous value goes to history before next is published.
func (e *Editor) commit(kind string, next TableStructure) {
	e.history.Commit(e.structure)
	e.structure = next
	e.logf("%s: %d vertical, %d horizontal lines", kind, len(next.VerticalLines), len(next.HorizontalLines))
	e.emitStructure()
	e.emitHistory()
}

func (e *Editor) restore(kind string, next TableStructure) {
	prev := e.structure
	e.structure = next
	e.logf("%s: %d vertical, %d horizontal lines", kind, len(next.VerticalLines), len(next.HorizontalLines))
	e.emitStructure()
	e.emitHistory()
	e.abandonDrag(kind)
	e.dropMovedSelection(prev)
}

// abandonDrag cancels the active drag without committing it. Its index is
// not trusted once lines were removed or restored under it.
func (e *Editor) abandonDrag(reason string) {
	state, ok := e.session.drag.state()
	if !ok {
		return
	}
	e.session.drag.cancel()
	e.logf("%s cancelled drag of %s line %d", reason, state.Ref.Type, state.Ref.Index)
}

// dropMovedSelection clears the selection when it no longer names the line
// it did in prev: it is out of range, or lines of its type were added or
// removed.
func (e *Editor) dropMovedSelection(prev TableStructure) {
	ref, ok := e.session.selection.current()
	if !ok {
		return
	}
	if e.structure.Valid(ref) && sameLayout(prev, e.structure, ref.Type) {
		return
	}
	e.session.selection.clear()
	e.emitSelection()
}

// sameLayout reports whether a and b hold the same number of lines of type
// t, so an index into one names the corresponding line of the other.
func sameLayout(a, b TableStructure, t LineType) bool {
	return len(a.Lines(t)) == len(b.Lines(t))
}

func (e *Editor) setHover(h Hover) {
	if e.session.hover == h {
		return
	}
	e.session.hover = h
	if cb := e.callbacks.OnHoverAffordanceChanged; cb != nil {
		e.outbox = append(e.outbox, func() { cb(h.Side, h.Anchor) })
	}
}

// scheduleHide arms the affordance hide timer. Only the most recently armed
// timer may clear the hover.
func (e *Editor) scheduleHide() {
	e.session.hideGen++
	gen := e.session.hideGen
	e.session.hideTimer = e.config.scheduler().AfterFunc(e.config.AffordanceHideDelay, func() {
		e.do(func() {
			if gen != e.session.hideGen {
				return
			}
			e.session.hideTimer = nil
			e.setHover(Hover{})
		})
	})
}

func (e *Editor) cancelHide() {
	if e.session.hideTimer == nil {
		return
	}
	e.session.hideTimer.Stop()
	e.session.hideTimer = nil
	e.session.hideGen++
}

func (e *Editor) emitStructure() {
	cb := e.callbacks.OnStructureChanged
	if cb == nil {
		return
	}
	s := e.structure
	e.outbox = append(e.outbox, func() { cb(s.VerticalLines, s.HorizontalLines) })
}

func (e *Editor) emitSelection() {
	cb := e.callbacks.OnSelectionChanged
	if cb == nil {
		return
	}
	sel := e.session.selection.snapshot()
	e.outbox = append(e.outbox, func() { cb(sel) })
}

func (e *Editor) emitHistory() {
	cb := e.callbacks.OnHistoryAvailability
	if cb == nil {
		return
	}
	canUndo, canRedo := e.history.CanUndo(), e.history.CanRedo()
	e.outbox = append(e.outbox, func() { cb(canUndo, canRedo) })
}

func (e *Editor) logf(format string, args ...any) {
	if e.config.EnableEventLogging {
		log.Printf("tablegrid: "+format, args...)
	}
}
