package internal

import "math"

const Tolerance = 1e-6

// Touch coordinates arrive in view-local units and go through float
// arithmetic on every frame, so equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Angle in degrees of the vector from p to other, using the atan2 convention
// with 0° along the positive x axis. Coincident points have a heading of 0.
func (p Point) HeadingTo(other Point) float64 {
	d := other.Sub(p)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Map an angle in degrees onto (-180, 180]. Rotation deltas are taken between
// two headings in [-180, 180], so without this a finger crossing the negative x
// axis would report a jump of nearly a full turn.
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}
