package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880
	toneLength = 150 * time.Millisecond
)

// Engine plays the countdown-finished alert. A failed speaker init
// leaves the engine disabled; the timer runs without sound.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. The returned error is for
// logging only, the engine is usable either way.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Engine{}, err
	}
	return &Engine{enabled: true}, nil
}

// Completed plays a short tone marking the end of a countdown.
func (e *Engine) Completed() {
	if !e.enabled {
		return
	}

	sine, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

// Close releases the speaker.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}
