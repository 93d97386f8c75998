//go:build linux && !cgo

package play

import (
	"fmt"
	"time"
)

// Audio output needs CGO on Linux; approximate a tone with the terminal
// bell and hold the mark's duration so the timing is unchanged.
func playTone(duration time.Duration) {
	fmt.Print("\a")
	time.Sleep(duration)
}
