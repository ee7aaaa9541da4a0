package internal

// A Tracker follows a pinch gesture across input frames. The host feeds it the
// active touch positions whenever they change, and asks for the manipulation
// since the previous frame.
//
// A gesture lasts from the first frame with touches to the next frame without
// any. The first frame of a gesture has nothing to compare against, so no
// manipulation is available until the second.
//
// A Tracker is not safe for concurrent use. It is meant to be owned by the
// thread that dispatches input for a single view.
type Tracker struct {
	previous TouchSet
	current  TouchSet

	totalRotation float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record the touches of a new frame. An empty frame ends the gesture.
func (t *Tracker) Update(touches []Point) {
	if len(touches) == 0 {
		t.Reset()
		return
	}

	// With no current set this is the start of a gesture, and previous is
	// already empty.
	t.previous = t.current
	t.current = NewTouchSet(touches)

	if m, ok := t.Manipulation(); ok {
		t.totalRotation += m.Rotation
	}
}

// End the gesture, if any. Equivalent to an update without touches.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// The manipulation between the last two frames of the current gesture. The
// second result is false when the gesture has fewer than two frames so far,
// which callers should treat as "nothing to apply this frame".
func (t *Tracker) Manipulation() (Manipulation, bool) {
	if t.previous.Empty() || t.current.Empty() {
		return Manipulation{}, false
	}
	return NewManipulation(t.previous, t.current), true
}

func (t *Tracker) Active() bool {
	return !t.current.Empty()
}

// Number of touches in the most recent frame.
func (t *Tracker) TouchCount() int {
	return t.current.Len()
}

// Rotation in degrees accumulated since the gesture began. Each frame
// contributes its normalised rotation, so a gesture can turn through more
// than a full circle.
func (t *Tracker) TotalRotation() float64 {
	return t.totalRotation
}
