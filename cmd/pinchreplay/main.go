// Command pinchreplay replays a recorded touch frame log through a pinch
// tracker, printing the manipulation for each frame and optionally drawing the
// gesture.
//
// Frame logs have one frame per line. Touches are separated by ";" and
// coordinates by whitespace or a comma. A blank line is a frame without
// touches, and "#" starts a comment:
//
//	# rotate, then pinch out
//	0 0; 1 0
//	0 0; 0 1
//	0 0; 0 2
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
