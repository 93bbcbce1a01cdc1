package convex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(0.1+0.2, 0.3))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+1e-6))
	assert.True(t, equalf(1, 1))
	assert.False(t, equalf(1, 1.00001))
}

func TestAreaSign(t *testing.T) {
	a := Point{0, 0}
	b := Point{1, 0}

	t.Run("counterclockwise", func(t *testing.T) {
		assert.Equal(t, 1, areaSign(a, b, Point{0, 1}))
		assert.True(t, left(a, b, Point{0, 1}))
		assert.True(t, leftOn(a, b, Point{0, 1}))
	})

	t.Run("clockwise", func(t *testing.T) {
		assert.Equal(t, -1, areaSign(a, b, Point{0, -1}))
		assert.False(t, left(a, b, Point{0, -1}))
		assert.False(t, leftOn(a, b, Point{0, -1}))
	})

	t.Run("collinear", func(t *testing.T) {
		assert.Equal(t, 0, areaSign(a, b, Point{2, 0}))
		assert.True(t, collinear(a, b, Point{2, 0}))
		assert.False(t, left(a, b, Point{2, 0}))
		assert.True(t, leftOn(a, b, Point{2, 0}))
	})

	t.Run("within tolerance of the line", func(t *testing.T) {
		// The area is nonzero but smaller than Epsilon, so this still
		// counts as collinear
		assert.Equal(t, 0, areaSign(a, b, Point{2, 1e-8}))
	})

	t.Run("orientation flips with argument order", func(t *testing.T) {
		c := Point{0.3, 0.7}
		assert.Equal(t, areaSign(a, b, c), -areaSign(b, a, c))
	})
}
