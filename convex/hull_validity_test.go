package convex

// This contains no actual tests. It is just a helper for checking that
// a computed hull is sound.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a computed hull is valid. The rules are:
// 1. The boundary is a loop of strict left turns, so it is convex,
//    counterclockwise, and free of collinear vertices.
// 2. The boundary starts at the lowest point, ties broken toward
//    maximum x.
// 3. Every boundary vertex is one of the samples.
// 4. Every sample lies inside or on the hull.
func AssertValidHull(t *testing.T, set *PointSet) {
	t.Helper()
	require.False(t, set.Dirty(), "hull must be computed before validating")

	outline := set.Boundary()
	require.GreaterOrEqual(t, len(outline), 3, "a hull needs at least three vertices")

	n := len(outline)
	for i := 0; i < n; i++ {
		a := outline[i]
		b := outline[(i+1)%n]
		c := outline[(i+2)%n]
		require.True(t, left(a, b, c), "boundary fails to turn left at %v %v %v", a, b, c)
	}

	low := outline[0]
	for _, p := range outline[1:] {
		require.False(t, p.Y < low.Y || (equalf(p.Y, low.Y) && p.X > low.X),
			"vertex %v sits below the starting vertex %v", p, low)
	}

	samples := set.Points()
	for _, v := range outline {
		require.Contains(t, samples, v, "boundary vertex %v is not a sample", v)
	}
	for _, p := range samples {
		require.True(t, set.Contains(p), "sample %v falls outside the hull", p)
	}
}
