package tablegrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/tablegrid"
)

const sessionScript = `
viewport: {width: 1000, height: 1000}
events:
  - {kind: down, line: vertical, index: 0, x: 200, y: 500}
  - {kind: move, x: 500, y: 500}
  - {kind: up}
  - {kind: hover, x: 500, y: 105}
  - {kind: insert}
  - {kind: hover, x: 500, y: 500}
  - {kind: wait, ms: 3000}
  - {kind: insert}
  - {kind: down, line: horizontal, index: 1, x: 500, y: 300}
  - {kind: up}
  - {kind: delete}
  - {kind: undo}
  - {kind: redo}
  - {kind: insert, side: bottom}
`

func TestReplay_Session(t *testing.T) {
	script, err := tablegrid.ParseScript([]byte(sessionScript))
	require.NoError(t, err)
	require.Equal(t, testViewport, script.Viewport)
	require.Len(t, script.Events, 14)

	editor, sched, rec := newTestEditor(t, testStructure())
	require.NoError(t, tablegrid.Replay(editor, sched, script))

	require.Len(t, rec.structures, 7)

	result := editor.Structure()
	vertical := result.Positions(tablegrid.Vertical)
	require.Equal(t, []float64{0.5, 0.4, 0.6}, vertical)

	horizontal := result.Positions(tablegrid.Horizontal)
	require.Len(t, horizontal, 3)
	require.InDelta(t, 0.2, horizontal[0], 1e-9)
	require.InDelta(t, 0.5, horizontal[1], 1e-9)
	require.InDelta(t, 0.7, horizontal[2], 1e-9)

	require.Equal(t, tablegrid.SideNone, editor.Hover().Side)
	require.Nil(t, editor.Selection())
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		sched  bool
	}{
		{name: "unknown kind", script: "events: [{kind: jump}]", sched: true},
		{name: "unknown line type", script: "events: [{kind: down, line: diagonal}]", sched: true},
		{name: "unknown side", script: "events: [{kind: insert, side: middle}]", sched: true},
		{name: "wait without scheduler", script: "events: [{kind: wait, ms: 10}]", sched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := tablegrid.ParseScript([]byte(tt.script))
			require.NoError(t, err)

			editor, sched, _ := newTestEditor(t, testStructure())
			if !tt.sched {
				sched = nil
			}
			require.Error(t, tablegrid.Replay(editor, sched, script))
		})
	}
}

func TestParseScript_Malformed(t *testing.T) {
	_, err := tablegrid.ParseScript([]byte("events: {kind: [up"))
	require.Error(t, err)
}
