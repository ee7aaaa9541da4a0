// Package advanced exposes the building blocks of the pinch tracker for hosts
// that recognise their own gestures: the geometry the tracker uses, the
// per-frame touch snapshot, and the frame log used to record and replay input.
package advanced

import (
	"io"

	"github.com/osuushi/pinch/internal"
)

type Point = internal.Point
type TouchSet = internal.TouchSet
type Manipulation = internal.Manipulation
type Tracker = internal.Tracker
type ParseError = internal.ParseError

const Tolerance = internal.Tolerance

func NewTouchSet(touches []Point) TouchSet {
	return internal.NewTouchSet(touches)
}

// Derive the manipulation between two non-empty frames directly, without a
// Tracker.
func NewManipulation(previous, current TouchSet) Manipulation {
	return internal.NewManipulation(previous, current)
}

func Midpoint(a, b Point) Point {
	return internal.Midpoint(a, b)
}

func Distance(a, b Point) float64 {
	return a.DistanceTo(b)
}

// Heading in degrees of the vector from a to b, 0° along the positive x axis.
func Heading(a, b Point) float64 {
	return a.HeadingTo(b)
}

// Map an angle in degrees onto (-180, 180].
func NormalizeDegrees(d float64) float64 {
	return internal.NormalizeDegrees(d)
}

// Read a frame log. See the internal package for the format.
func ParseFrames(r io.Reader) ([][]Point, error) {
	return internal.ParseFrames(r)
}

// Convert a recovered frame log parse failure into an error. Any other panic
// value is re-panicked.
func HandleParsePanicRecover(r interface{}) error {
	return internal.HandleParsePanicRecover(r)
}
