package timer

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	bellFrequency = 880.0
	bellLength    = 400 * time.Millisecond
	bufferSize    = 10
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// bell returns a short, softened sine tone.
func bell() (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, bellFrequency)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(bellLength), tone),
		Base:     2,
		Volume:   -1,
	}, nil
}

// playBell plays the bell and blocks until it has finished.
func playBell() error {
	s, err := bell()
	if err != nil {
		return err
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/bufferSize))
	})

	if speakerErr != nil {
		return speakerErr
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
