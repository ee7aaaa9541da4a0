package internal

import "github.com/pkg/errors"

// Threading errors through every helper of the frame log parser would bury the
// format in error plumbing. Instead, the helpers panic, and ParseFrames
// recovers to convert to an error.

// ParseError wraps failures raised by fatalf, so that recovery can tell them
// apart from runtime panics, which must keep propagating.
type ParseError struct {
	error
}

// Panic with a ParseError.
func fatalf(format string, args ...interface{}) {
	panic(ParseError{errors.Errorf(format, args...)})
}

func HandleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(ParseError); ok {
			return parseError
		}
		panic(r)
	}
	return nil
}
