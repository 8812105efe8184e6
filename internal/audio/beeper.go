// Package audio provides the tone output for the sound timer.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 440  // Hz of the square wave
	amplitude  = 0.15 // volume of the tone
)

// Beeper plays a square wave tone through the system speaker while active.
type Beeper struct {
	period int // samples per wave period
	phase  int // only accessed by the speaker goroutine
	active atomic.Bool
}

// New initializes the speaker and starts streaming a silent tone that is
// audible once activated.
func New() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	b := newBeeper(sampleRate)
	speaker.Play(b.stream())
	return b, nil
}

func newBeeper(rate beep.SampleRate) *Beeper {
	period := int(rate) / frequency
	if period < 2 {
		period = 2
	}
	return &Beeper{period: period}
}

// SetActive starts or stops the tone.
func (b *Beeper) SetActive(active bool) {
	b.active.Store(active)
}

// Close stops the speaker.
func (b *Beeper) Close() {
	speaker.Close()
}

func (b *Beeper) stream() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		active := b.active.Load()
		for i := range samples {
			var value float64
			if active {
				value = squareWave(b.phase, b.period)
			}
			b.phase = (b.phase + 1) % b.period
			samples[i][0] = value
			samples[i][1] = value
		}
		return len(samples), true
	})
}

// squareWave returns the sample value at the phase of a wave period.
func squareWave(phase, period int) float64 {
	if phase < period/2 {
		return amplitude
	}
	return -amplitude
}

// Silent is a tone output that never plays anything.
type Silent struct{}

// SetActive does nothing.
func (Silent) SetActive(bool) {}

// Close does nothing.
func (Silent) Close() {}
