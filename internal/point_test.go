package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	a, b := Point{1, 2}, Point{4, 6}
	assert.Equal(t, Point{5, 8}, a.Add(b))
	assert.Equal(t, Point{3, 4}, b.Sub(a))
	assert.Equal(t, Point{2, 4}, a.Scale(2))
	assert.Equal(t, Point{2.5, 4}, Midpoint(a, b))
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.DistanceTo(a))
}

func TestPointEqual(t *testing.T) {
	assert.True(t, Point{1, 1}.Equal(Point{1 + Tolerance/2, 1}))
	assert.False(t, Point{1, 1}.Equal(Point{1 + 2*Tolerance, 1}))
}

func TestNormalizeDegrees_Range(t *testing.T) {
	for d := -1080.0; d <= 1080; d += 7.5 {
		n := NormalizeDegrees(d)
		assert.True(t, n > -180 && n <= 180, "NormalizeDegrees(%v) = %v", d, n)
	}
}

func TestTouchSet(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := NewTouchSet(nil)
		assert.True(t, s.Empty())
		assert.False(t, s.Pinching())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Points())
		assert.Equal(t, Point{}, s.Center())
		assert.Equal(t, 0.0, s.Span())
	})

	t.Run("single", func(t *testing.T) {
		s := NewTouchSet([]Point{{3, 4}})
		assert.False(t, s.Empty())
		assert.False(t, s.Pinching())
		assert.Equal(t, Point{3, 4}, s.Center())
		assert.Equal(t, 0.0, s.Span())
		assert.Equal(t, 0.0, s.Angle())
	})

	t.Run("more than two", func(t *testing.T) {
		s := NewTouchSet([]Point{{0, 0}, {0, -2}, {9, 9}})
		assert.True(t, s.Pinching())
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []Point{{0, 0}, {0, -2}}, s.Points())
		assert.Equal(t, Point{0, -1}, s.Center())
		assert.Equal(t, 2.0, s.Span())
		assert.InDelta(t, -90, s.Angle(), Tolerance)
	})
}
