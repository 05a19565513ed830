package tablegrid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/tablegrid"
)

func TestManualScheduler_RunsInDueOrder(t *testing.T) {
	sched := tablegrid.NewManualScheduler()

	var order []string
	sched.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	sched.AfterFunc(time.Second, func() { order = append(order, "a") })
	stopped := sched.AfterFunc(time.Second, func() { order = append(order, "stopped") })
	sched.AfterFunc(5*time.Second, func() { order = append(order, "late") })

	require.True(t, stopped.Stop())
	require.False(t, stopped.Stop())
	require.Equal(t, 3, sched.Pending())

	sched.Advance(3 * time.Second)
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 1, sched.Pending())

	sched.Advance(2 * time.Second)
	require.Equal(t, []string{"a", "b", "late"}, order)
	require.Equal(t, 0, sched.Pending())
}

func TestManualScheduler_StopAfterFire(t *testing.T) {
	sched := tablegrid.NewManualScheduler()

	fired := 0
	timer := sched.AfterFunc(0, func() { fired++ })
	sched.Advance(0)

	require.Equal(t, 1, fired)
	require.False(t, timer.Stop())
}

func TestEditor_DefaultSchedulerHidesAffordance(t *testing.T) {
	config := tablegrid.DefaultConfig()
	config.AffordanceHideDelay = 10 * time.Millisecond

	hidden := make(chan struct{}, 1)
	editor, err := tablegrid.NewEditor(testStructure(), testPolygon, testViewport, config, tablegrid.Callbacks{
		OnHoverAffordanceChanged: func(side tablegrid.Side, _ tablegrid.Point) {
			if side == tablegrid.SideNone {
				hidden <- struct{}{}
			}
		},
	})
	require.NoError(t, err)
	defer editor.Close()

	editor.EdgeHover(px(500, 105))
	editor.EdgeHover(px(500, 500))

	select {
	case <-hidden:
	case <-time.After(5 * time.Second):
		t.Fatal("affordance was never hidden")
	}
	require.Equal(t, tablegrid.SideNone, editor.Hover().Side)
}
