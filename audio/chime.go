// Package audio plays short tones when the player collects dots and power-pills.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/wricardo/mazegame/game/engine"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)

	// quieter than unity; each step halves the amplitude
	DefaultVolume = -1.0
)

// Tone is a single sine note
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// TonesFor returns the notes played for a collection; nothing is played for other blocks
func TonesFor(collected engine.BlockType) []Tone {
	switch collected {
	case engine.Dot:
		return []Tone{{Frequency: 880, Duration: 40 * time.Millisecond}}
	case engine.PowerPill:
		// B5 then E6
		return []Tone{
			{Frequency: 987.77, Duration: 80 * time.Millisecond},
			{Frequency: 1318.51, Duration: 160 * time.Millisecond},
		}
	}
	return nil
}

// Chime mixes collection tones onto the speaker
type Chime struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a silent chime; Init connects it to the speaker
func NewChime() *Chime {
	return &Chime{
		sampleRate: DefaultSampleRate,
		volume:     DefaultVolume,
		mixer:      &beep.Mixer{},
	}
}

// Init opens the audio device. A chime that fails to initialise stays silent.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// OnTick plays the tones for whatever the step collected
func (c *Chime) OnTick(result engine.TickResult) {
	c.Play(result.Score)
}

// Play mixes the tones for a score update onto the speaker
func (c *Chime) Play(update engine.ScoreUpdate) {
	if !update.Changed() || !c.Enabled() {
		return
	}

	streamer, err := c.Streamer(TonesFor(update.Collected))
	if err != nil || streamer == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}

// Streamer renders a sequence of tones at the chime's sample rate and volume
func (c *Chime) Streamer(tones []Tone) (beep.Streamer, error) {
	if len(tones) == 0 {
		return nil, nil
	}

	notes := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		sine, err := generators.SineTone(c.sampleRate, tone.Frequency)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", tone.Frequency, err)
		}
		notes = append(notes, beep.Take(c.sampleRate.N(tone.Duration), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

// Close silences anything still playing
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
