package internal

import (
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
)

func TestManipulation_Translation(t *testing.T) {
	m := Manipulation{Center: Point{3, 1}, PreviousCenter: Point{1, 2}, Scale: 1}
	assert.Equal(t, Point{2, -1}, m.Translation())
	assert.False(t, m.IsIdentity())
	assert.True(t, Manipulation{Center: Point{1, 1}, PreviousCenter: Point{1, 1}, Scale: 1, Angle: 30}.IsIdentity())
}

func TestManipulation_Equal(t *testing.T) {
	m := Manipulation{Center: Point{0, 0.5}, PreviousCenter: Point{0.5, 0}, Scale: 1, Rotation: 90, Angle: 90}
	near := m
	near.Rotation += Tolerance / 10
	assert.True(t, m.Equal(near))
	assert.NotEqual(t, m, near)

	far := m
	far.Angle = -90
	assert.False(t, m.Equal(far))
}

func TestNewManipulation_FewerThanTwoTouches(t *testing.T) {
	previous := NewTouchSet([]Point{{0, 0}, {4, 0}})
	current := NewTouchSet([]Point{{1, 1}})
	assert.Equal(t, Manipulation{Center: Point{1, 1}, PreviousCenter: Point{0, 0}, Scale: 1}, NewManipulation(previous, current))

	// The other way round, the angle of the new pair is still reported.
	assert.Equal(t,
		Manipulation{Center: Point{0, 0}, PreviousCenter: Point{1, 1}, Scale: 1},
		NewManipulation(current, previous),
	)
	added := NewTouchSet([]Point{{1, 1}, {1, 3}})
	assert.Equal(t,
		Manipulation{Center: Point{1, 1}, PreviousCenter: Point{1, 1}, Scale: 1, Angle: 90},
		NewManipulation(current, added),
	)
}

func TestManipulation_Format(t *testing.T) {
	m := Manipulation{Center: Point{0, 1}, PreviousCenter: Point{0, 0.5}, Scale: 2, Angle: 90}
	assert.Equal(t, "(0, 1) <- (0, 0.5) scale x2.000 rotation +0.0° angle 90.0°", m.Format(aurora.NewAurora(false)))
	assert.Contains(t, m.String(), "x2.000")
}
