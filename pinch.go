// Pinch and pan gesture tracking for map views.
//
// A host feeds a Tracker the active touch positions of every input frame, and
// gets back the translation, scale and rotation of the gesture since the
// previous frame, ready to apply to a view transform. One and two finger
// gestures are supported, and fingers may be added or lifted mid-gesture.
package pinch

import "github.com/osuushi/pinch/advanced"

type Point = advanced.Point
type Manipulation = advanced.Manipulation
type Tracker = advanced.Tracker

// Create a tracker for one view. The zero Tracker is also ready to use.
func NewTracker() *Tracker {
	return &Tracker{}
}
