package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// A Manipulation is the translation, scale and rotation of a touch gesture
// between two consecutive frames. It is a plain value, so == compares all
// fields exactly.
type Manipulation struct {
	Center         Point
	PreviousCenter Point
	// Ratio of the current to the previous distance between the first two
	// touches.
	Scale float64
	// Change in the heading of the two-finger line, in degrees within
	// (-180, 180].
	Rotation float64
	// Current heading of the two-finger line, in degrees.
	Angle float64
}

// Derive the manipulation between two retained frames. Both must be non-empty.
func NewManipulation(previous, current TouchSet) Manipulation {
	m := Manipulation{
		Center:         current.Center(),
		PreviousCenter: previous.Center(),
		Scale:          1,
		Angle:          current.Angle(),
	}
	if !previous.Pinching() || !current.Pinching() {
		// A finger was added or lifted. Both centres come from the touches the
		// frames share, so a finger that stays put does not pan the view.
		shared := min(previous.n, current.n)
		m.Center = current.centerOf(shared)
		m.PreviousCenter = previous.centerOf(shared)
		return m
	}

	// Coincident fingers in the previous frame leave the scale undefined, so
	// it stays at 1 rather than sending an infinity into the view transform.
	if previousSpan := previous.Span(); previousSpan > 0 {
		m.Scale = current.Span() / previousSpan
	}
	m.Rotation = NormalizeDegrees(current.Angle() - previous.Angle())
	return m
}

func (m Manipulation) Translation() Point {
	return m.Center.Sub(m.PreviousCenter)
}

func (m Manipulation) IsIdentity() bool {
	return m.Center.Equal(m.PreviousCenter) && Equal(m.Scale, 1) && Equal(m.Rotation, 0)
}

// Tolerance based comparison of every field.
func (m Manipulation) Equal(other Manipulation) bool {
	return m.Center.Equal(other.Center) &&
		m.PreviousCenter.Equal(other.PreviousCenter) &&
		Equal(m.Scale, other.Scale) &&
		Equal(m.Rotation, other.Rotation) &&
		Equal(m.Angle, other.Angle)
}

func (m Manipulation) String() string {
	return m.Format(aurora.NewAurora(true))
}

// Render the manipulation on one line. Scale is highlighted when the fingers
// moved apart or together, and rotation when they turned.
func (m Manipulation) Format(au aurora.Aurora) string {
	scale := fmt.Sprintf("x%.3f", m.Scale)
	if Equal(m.Scale, 1) {
		scale = au.Faint(scale).String()
	} else {
		scale = au.Cyan(scale).String()
	}
	rotation := fmt.Sprintf("%+.1f°", m.Rotation)
	if Equal(m.Rotation, 0) {
		rotation = au.Faint(rotation).String()
	} else {
		rotation = au.Magenta(rotation).String()
	}
	return fmt.Sprintf("(%g, %g) <- (%g, %g) scale %s rotation %s angle %.1f°",
		m.Center.X, m.Center.Y, m.PreviousCenter.X, m.PreviousCenter.Y, scale, rotation, m.Angle)
}
