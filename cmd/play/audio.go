//go:build (linux && cgo) || windows || darwin

package play

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = 44100
	toneHz     = 700 // standard morse sidetone
)

var speakerReady = false

// playTone sounds one sine tone for the duration of a mark, blocking
// until it finishes. Gap timing stays with the caller.
func playTone(duration time.Duration) {
	if !speakerReady {
		if err := speaker.Init(beep.SampleRate(sampleRate), sampleRate/10); err != nil {
			// No audio device: fall back to silence of the same length
			// so the transmission timing stays intact.
			time.Sleep(duration)
			return
		}
		speakerReady = true
	}

	tone := &sineTone{samples: int(float64(sampleRate) * duration.Seconds())}

	done := make(chan struct{})
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		close(done)
	})))
	<-done
}

// sineTone streams a fixed-frequency sine wave with a short fade at both
// ends to avoid clicks.
type sineTone struct {
	samples  int
	position int
}

func (s *sineTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.samples {
			return i, false
		}

		phase := 2 * math.Pi * toneHz * float64(s.position) / float64(sampleRate)
		value := math.Sin(phase)

		fadeLen := s.samples / 20
		if fadeLen < 10 {
			fadeLen = 10
		}
		switch {
		case s.position < fadeLen:
			value *= float64(s.position) / float64(fadeLen)
		case s.position > s.samples-fadeLen:
			value *= float64(s.samples-s.position) / float64(fadeLen)
		}

		value *= 0.5
		samples[i][0] = value
		samples[i][1] = value
		s.position++
	}
	return len(samples), true
}

func (s *sineTone) Err() error {
	return nil
}
