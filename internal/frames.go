package internal

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// A frame log records the touches of successive input frames, one frame per
// line. Touches are separated by ";", and the two coordinates of a touch by
// whitespace or a comma:
//
//	# pinch out
//	0 0; 1 0
//	0 0; 2 0
//
//	5,5
//
// A blank line is a frame without touches, which ends the gesture. Anything
// after a "#" is a comment, and lines holding only a comment are skipped.

func ParseFrames(r io.Reader) (frames [][]Point, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			frames = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
			if strings.TrimSpace(line) == "" {
				continue
			}
		}
		frames = append(frames, parseFrame(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading frame log")
	}
	return frames, nil
}

func parseFrame(line string, lineNumber int) []Point {
	if strings.TrimSpace(line) == "" {
		return []Point{}
	}
	parts := strings.Split(line, ";")
	touches := make([]Point, 0, len(parts))
	for _, part := range parts {
		touches = append(touches, parseTouch(part, lineNumber))
	}
	return touches
}

func parseTouch(s string, lineNumber int) Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		fatalf("line %d: touch %q must have two coordinates", lineNumber, strings.TrimSpace(s))
	}
	return Point{
		X: parseCoordinate(fields[0], lineNumber),
		Y: parseCoordinate(fields[1], lineNumber),
	}
}

func parseCoordinate(s string, lineNumber int) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		fatalf("line %d: bad coordinate %q", lineNumber, s)
	}
	return v
}
