package convex

import "math"

// Epsilon is the tolerance under which two values are considered
// equal. Input coordinates are float32, so even though the signed
// areas below are computed in float64, nothing finer than float32's
// machine epsilon is meaningful geometry rather than rounding noise.
const Epsilon = 1.1920929e-07

// Equal checks that two values are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// equalf is Equal for raw float32 coordinates.
func equalf(a, b float32) bool {
	return math.Abs(float64(a-b)) <= Epsilon
}

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// areaSign classifies the triangle a, b, c by the sign of its doubled
// signed area: 1 when the path a to b to c turns counterclockwise, -1
// when it turns clockwise, and 0 when the three points are collinear
// within Epsilon. The coordinate differences are taken in float32 and
// widened to float64 before multiplying, so equal inputs cancel
// exactly.
func areaSign(a, b, c Point) int {
	area2 := float64(b.X-a.X)*float64(c.Y-a.Y) -
		float64(c.X-a.X)*float64(b.Y-a.Y)
	switch {
	case area2 > Epsilon:
		return 1
	case area2 < -Epsilon:
		return -1
	default:
		return 0
	}
}

// left checks that c is strictly left of the directed line through a
// and b.
func left(a, b, c Point) bool {
	return areaSign(a, b, c) > 0
}

// leftOn checks that c is left of or on the directed line through a
// and b.
func leftOn(a, b, c Point) bool {
	return areaSign(a, b, c) >= 0
}

func collinear(a, b, c Point) bool {
	return areaSign(a, b, c) == 0
}
