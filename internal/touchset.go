package internal

// A TouchSet is the snapshot of one input frame that the tracker retains. Only
// the first two touches take part in a manipulation, so only those are kept;
// the caller's slice is never retained, since hosts typically reuse the same
// buffer for every frame.
//
// Touches are matched positionally between frames: index 0 of one frame is
// compared with index 0 of the next. If the host reorders touches between
// frames the derived rotation and scale will be wrong for that frame.
type TouchSet struct {
	points [2]Point
	n      int // Number of retained points, at most 2
	total  int // Number of touches reported in the frame
}

func NewTouchSet(touches []Point) TouchSet {
	var s TouchSet
	s.total = len(touches)
	s.n = copy(s.points[:], touches)
	return s
}

func (s TouchSet) Empty() bool {
	return s.n == 0
}

// Total number of touches the host reported, including those beyond the
// first two.
func (s TouchSet) Len() int {
	return s.total
}

func (s TouchSet) Pinching() bool {
	return s.n == 2
}

// The points that take part in manipulation, in input order.
func (s TouchSet) Points() []Point {
	return append([]Point(nil), s.points[:s.n]...)
}

// Midpoint of the first two touches, or the single touch.
func (s TouchSet) Center() Point {
	return s.centerOf(s.n)
}

// Center of the first k retained touches.
func (s TouchSet) centerOf(k int) Point {
	switch min(k, s.n) {
	case 0:
		return Point{}
	case 1:
		return s.points[0]
	}
	return Midpoint(s.points[0], s.points[1])
}

// Distance between the first two touches. Zero with fewer than two.
func (s TouchSet) Span() float64 {
	if s.n < 2 {
		return 0
	}
	return s.points[0].DistanceTo(s.points[1])
}

// Heading of the line from the first to the second touch. Zero with fewer
// than two.
func (s TouchSet) Angle() float64 {
	if s.n < 2 {
		return 0
	}
	return s.points[0].HeadingTo(s.points[1])
}
