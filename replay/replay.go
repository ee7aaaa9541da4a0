// Package replay drives a pinch tracker over a recorded frame log, the way a
// host would feed it input frame by frame, so that recorded gestures can be
// inspected and regressions reproduced.
package replay

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/pinch/dbg"
	"github.com/osuushi/pinch/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
	// When set, the trace is saved to this PNG file.
	DrawPath string
	// Pixels per unit of touch coordinates. Defaults to 1.
	DrawScale float64
	// Also print the trace inline (iTerm only).
	Imgcat bool
}

// A Step is the tracker's state after one frame.
type Step struct {
	Frame   int
	Touches []internal.Point
	// Readable name shared by all frames of a gesture. Empty for frames
	// without touches.
	Gesture string
	// Only meaningful when HasManipulation is set.
	Manipulation    internal.Manipulation
	HasManipulation bool
	TotalRotation   float64
}

type gestureKey struct {
	n int
}

func Run(frames [][]internal.Point, opts Options) ([]Step, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	tracker := internal.NewTracker()
	names := dbg.NewNamer()
	steps := make([]Step, 0, len(frames))
	gestures := 0
	for i, frame := range frames {
		if len(frame) > 0 && !tracker.Active() {
			gestures++
		}
		tracker.Update(frame)

		step := Step{
			Frame:         i,
			Touches:       frame,
			TotalRotation: tracker.TotalRotation(),
		}
		if tracker.Active() {
			step.Gesture = names.Name(gestureKey{gestures})
		}
		step.Manipulation, step.HasManipulation = tracker.Manipulation()
		steps = append(steps, step)

		fields := logrus.Fields{"frame": i, "touches": len(frame)}
		if step.Gesture != "" {
			fields["gesture"] = step.Gesture
		}
		if step.HasManipulation {
			fields["scale"] = step.Manipulation.Scale
			fields["rotation"] = step.Manipulation.Rotation
			fields["translation"] = step.Manipulation.Translation()
		}
		logger.WithFields(fields).Debug("frame")
	}
	logger.WithFields(logrus.Fields{"frames": len(frames), "gestures": gestures}).Info("replay finished")

	if opts.DrawPath != "" || opts.Imgcat {
		if err := draw(frames, opts); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

func draw(frames [][]internal.Point, opts Options) error {
	scale := opts.DrawScale
	if scale <= 0 {
		scale = 1
	}
	if opts.DrawPath != "" {
		if err := internal.SaveTrace(frames, scale, opts.DrawPath); err != nil {
			return errors.Wrap(err, "drawing replay")
		}
	}
	if opts.Imgcat {
		if err := internal.PrintTrace(frames, scale); err != nil {
			return errors.Wrap(err, "printing replay")
		}
	}
	return nil
}

// Read a frame log and replay it.
func RunReader(r io.Reader, opts Options) ([]Step, error) {
	frames, err := internal.ParseFrames(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing frame log")
	}
	return Run(frames, opts)
}

// Write one line per step.
func Print(w io.Writer, steps []Step, au aurora.Aurora) error {
	for _, step := range steps {
		gesture := step.Gesture
		if gesture == "" {
			gesture = "-"
		}
		detail := au.Faint("no manipulation").String()
		if step.HasManipulation {
			detail = step.Manipulation.Format(au)
		}
		gesture = au.Bold(fmt.Sprintf("%-24s", gesture)).String()
		_, err := fmt.Fprintf(w, "%4d %s %d touches  %s\n", step.Frame, gesture, len(step.Touches), detail)
		if err != nil {
			return errors.Wrap(err, "writing replay")
		}
	}
	return nil
}
