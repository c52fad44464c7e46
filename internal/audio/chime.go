package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/spiral"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate    = beep.SampleRate(44100)
	ToneDuration  = 90 * time.Millisecond
	tapRingSize   = 8192
	levelWindow   = 1024
	speakerBuffer = time.Second / 20
)

var familyFrequency = map[spiral.Family]float64{
	spiral.Archimedean: 440.00,
	spiral.Hyperbolic:  554.37,
	spiral.Logarithmic: 659.25,
}

// Chime plays a short tone whenever the animation restarts. The pitch follows
// the spiral family. Tones are mixed into one long-lived stream so the level
// tap also sees the silence between them.
type Chime struct {
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	tap    *levelTap
	ready  bool
}

// NewChime creates a chime with a gain in octaves (0 is unity, -1 is half).
func NewChime(volume float64) *Chime {
	mixer := &beep.Mixer{}
	tap := newLevelTap(mixer, tapRingSize)
	return &Chime{
		sr:     SampleRate,
		volume: volume,
		mixer:  mixer,
		tap:    tap,
		ctrl:   &beep.Ctrl{Streamer: tap},
	}
}

// Init opens the audio device and starts the output stream.
func (c *Chime) Init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(c.sr, c.sr.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.ctrl)
	c.ready = true
	return nil
}

// Play queues the tone for p. It is a no-op before Init.
func (c *Chime) Play(p anim.Params) {
	if !c.ready {
		return
	}
	tone := c.Tone(p.Family)
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// ToggleMute silences or resumes the output and reports whether it is now muted.
func (c *Chime) ToggleMute() bool {
	if !c.ready {
		return c.ctrl.Paused
	}
	speaker.Lock()
	c.ctrl.Paused = !c.ctrl.Paused
	paused := c.ctrl.Paused
	speaker.Unlock()
	return paused
}

// Level returns the current output loudness in [0, 1].
func (c *Chime) Level() float64 {
	return math.Min(1, c.tap.level(levelWindow))
}

// Tone builds the cue for family f.
func (c *Chime) Tone(f spiral.Family) beep.Streamer {
	freq, ok := familyFrequency[f]
	if !ok {
		freq = familyFrequency[spiral.Archimedean]
	}
	return &effects.Volume{
		Streamer: sineBurst(c.sr, freq, ToneDuration),
		Base:     2,
		Volume:   c.volume,
	}
}

// sineBurst is a sine wave with a linear fade-out, ending after d.
func sineBurst(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			envelope := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * envelope
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
