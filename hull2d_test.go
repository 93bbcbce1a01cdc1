package hull2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomlib/hull2d/convex"
)

// Smoke tests. The internals are already tested.
func TestConvexHull(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 0, Y: 0},
	}

	outline, err := ConvexHull(points)
	assert.NoError(t, err)
	assert.Len(t, outline, 4)
}

func TestConvexHullRejectsThinInput(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		_, err := ConvexHull([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
		assert.ErrorIs(t, err, convex.ErrTooFewPoints)
	})

	t.Run("collinear points", func(t *testing.T) {
		_, err := ConvexHull([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
		assert.ErrorIs(t, err, convex.ErrTooFewPoints)
	})
}

func TestIntersects(t *testing.T) {
	build := func(points ...Point) *PointSet {
		set := convex.NewPointSet(len(points))
		require.NoError(t, set.AddPoints(points...))
		require.NoError(t, set.ComputeHull(convex.NewScanStack(set.Cap())))
		return set
	}
	a := build(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 1, Y: 2})
	b := build(Point{X: 10, Y: 10}, Point{X: 12, Y: 10}, Point{X: 11, Y: 12})

	hit, err := Intersects(a, b)
	assert.NoError(t, err)
	assert.False(t, hit)

	hit, err = Intersects(a, a)
	assert.NoError(t, err)
	assert.True(t, hit)
}

func TestIntersectsDirtyHullErrors(t *testing.T) {
	a := convex.NewPointSet(4)
	require.NoError(t, a.AddPoints(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 1, Y: 2}))
	b := convex.NewPointSet(4)
	require.NoError(t, b.AddPoints(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 1, Y: 2}))

	// The hulls were never computed; the wrapper must hand that back as
	// an error, not a panic
	hit, err := Intersects(a, b)
	assert.Error(t, err)
	assert.False(t, hit)
}
