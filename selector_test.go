package tablegrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/tablegrid"
)

func TestRegionSelector_ProducesNormalizedPolygon(t *testing.T) {
	sel := &tablegrid.RegionSelector{Viewport: testViewport}

	sel.Begin(tablegrid.PointerEvent{ClientX: 110, ClientY: 220, Left: 10, Top: 20})
	require.True(t, sel.Selecting())

	sel.Update(tablegrid.PointerEvent{ClientX: 810, ClientY: 620, Left: 10, Top: 20})
	min, max := sel.Rect()
	require.Equal(t, tablegrid.Point{X: 100, Y: 200}, min)
	require.Equal(t, tablegrid.Point{X: 800, Y: 600}, max)

	polygon, ok := sel.End()
	require.True(t, ok)
	require.False(t, sel.Selecting())
	require.Equal(t, []tablegrid.Point{
		{X: 0.1, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.8, Y: 0.6},
		{X: 0.1, Y: 0.6},
	}, polygon.Vertices)

	box, err := tablegrid.BoundingBoxOf(polygon.Vertices)
	require.NoError(t, err)
	require.Equal(t, 0.1, box.MinX)
	require.Equal(t, 0.6, box.MaxY)
}

func TestRegionSelector_ClampsToViewport(t *testing.T) {
	sel := &tablegrid.RegionSelector{Viewport: testViewport}

	sel.Begin(px(500, 500))
	sel.Update(px(-200, 3000))

	min, max := sel.Rect()
	require.Equal(t, tablegrid.Point{X: 0, Y: 500}, min)
	require.Equal(t, tablegrid.Point{X: 500, Y: 1000}, max)

	polygon, ok := sel.End()
	require.True(t, ok)
	require.Equal(t, tablegrid.Point{X: 0, Y: 1}, polygon.Vertices[2])
}

func TestRegionSelector_IgnoresUpdatesWhenIdle(t *testing.T) {
	sel := &tablegrid.RegionSelector{Viewport: testViewport}

	sel.Update(px(300, 300))
	_, ok := sel.End()
	require.False(t, ok)

	sel.Begin(px(100, 100))
	sel.Clear()
	require.False(t, sel.Selecting())
	_, ok = sel.End()
	require.False(t, ok)
}
