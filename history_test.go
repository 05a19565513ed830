package tablegrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func structureAt(x float64) TableStructure {
	return TableStructure{VerticalLines: []Line{VerticalLine(x, 0, 1)}}
}

func TestHistory_UndoRedoInverse(t *testing.T) {
	h := NewHistory(0)
	current := structureAt(0)
	for i := 1; i <= 5; i++ {
		h.Commit(current)
		current = structureAt(float64(i) / 10)
	}

	for depth := 0; depth < 5; depth++ {
		before := current

		undone, ok := h.Undo(current)
		require.True(t, ok)
		redone, ok := h.Redo(undone)
		require.True(t, ok)
		require.Equal(t, before, redone, "undo then redo at depth %d", depth)

		current, ok = h.Undo(redone)
		require.True(t, ok)
	}

	_, ok := h.Undo(current)
	require.False(t, ok, "undo past the first commit")
	require.Equal(t, structureAt(0), current)
}

func TestHistory_CommitClearsRedo(t *testing.T) {
	h := NewHistory(0)
	h.Commit(structureAt(0.1))
	h.Commit(structureAt(0.2))

	_, ok := h.Undo(structureAt(0.3))
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Commit(structureAt(0.2))
	require.False(t, h.CanRedo())

	current := structureAt(0.4)
	result, ok := h.Redo(current)
	require.False(t, ok)
	require.Equal(t, current, result)
}

func TestHistory_RedoOrder(t *testing.T) {
	h := NewHistory(0)
	h.Commit(structureAt(0.1))
	h.Commit(structureAt(0.2))
	current := structureAt(0.3)

	current, _ = h.Undo(current)
	current, _ = h.Undo(current)
	require.Equal(t, structureAt(0.1), current)

	undo, redo := h.Depth()
	require.Equal(t, 0, undo)
	require.Equal(t, 2, redo)

	current, _ = h.Redo(current)
	require.Equal(t, structureAt(0.2), current)
	current, _ = h.Redo(current)
	require.Equal(t, structureAt(0.3), current)
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Commit(structureAt(0.1))
	h.Commit(structureAt(0.2))
	h.Commit(structureAt(0.3))

	undo, _ := h.Depth()
	require.Equal(t, 2, undo)

	current, ok := h.Undo(structureAt(0.4))
	require.True(t, ok)
	require.Equal(t, structureAt(0.3), current)
	current, ok = h.Undo(current)
	require.True(t, ok)
	require.Equal(t, structureAt(0.2), current)
	_, ok = h.Undo(current)
	require.False(t, ok, "oldest entry should have been evicted")
}
