package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Helpers for looking at a recorded gesture. Every frame is drawn on top of the
// previous ones, shading from blue for the first frame to orange for the last:
// a dot per touch, the line between the first two touches, and a white path
// joining the centres of each gesture.

const (
	// Padding around the trace, in pixels
	drawPadding = 40
	// Largest side of the trace itself, in pixels. Larger traces are scaled
	// down to fit.
	maxDrawSize = 4096
)

// Draw every frame onto one canvas, with scale pixels per touch unit.
func DrawFrames(frames [][]Point, scale float64) (*gg.Context, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, errors.Errorf("draw scale must be positive and finite, got %g", scale)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, frame := range frames {
		for _, p := range frame {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) { // No touches at all
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	extent := math.Max(maxX-minX, maxY-minY)
	if math.IsInf(extent, 1) {
		return nil, errors.Errorf("trace extent from (%g, %g) to (%g, %g) is too large to draw", minX, minY, maxX, maxY)
	}
	if extent*scale > maxDrawSize {
		scale = maxDrawSize / extent
	}

	width := int(math.Min(math.Round(scale*(maxX-minX)), maxDrawSize)) + drawPadding*2
	height := int(math.Min(math.Round(scale*(maxY-minY)), maxDrawSize)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	drawCenterPaths(c, frames)

	radius := 4 / scale
	for i, frame := range frames {
		r, g, b := frameColor(i, len(frames))
		c.SetRGB(r, g, b)
		touches := NewTouchSet(frame)
		if touches.Pinching() {
			points := touches.Points()
			c.SetLineWidth(1)
			c.DrawLine(points[0].X, points[0].Y, points[1].X, points[1].Y)
			c.Stroke()
		}
		for _, p := range frame {
			c.DrawCircle(p.X, p.Y, radius)
			c.Fill()
		}
	}
	return c, nil
}

func drawCenterPaths(c *gg.Context, frames [][]Point) {
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2)
	started := false
	for _, frame := range frames {
		if len(frame) == 0 {
			started = false
			continue
		}
		center := NewTouchSet(frame).Center()
		if started {
			c.LineTo(center.X, center.Y)
		} else {
			c.MoveTo(center.X, center.Y)
			started = true
		}
	}
	c.Stroke()
}

func frameColor(i, n int) (r, g, b float64) {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	return 0.2 + 0.8*t, 0.4 + 0.2*t, 1 - 0.8*t
}

func SaveTrace(frames [][]Point, scale float64, path string) error {
	c, err := DrawFrames(frames, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving trace to %s", path)
}

// Print the trace inline in the terminal (iTerm only).
func PrintTrace(frames [][]Point, scale float64) error {
	f, err := os.CreateTemp("", "pinch-trace-*.png")
	if err != nil {
		return errors.Wrap(err, "creating trace file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := SaveTrace(frames, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
