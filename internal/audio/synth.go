package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the output rate for every synthesized cue.
const SampleRate = beep.SampleRate(44100)

// note is one step of a cue: a sine tone, or noise when freq is zero.
type note struct {
	freq float64
	dur  time.Duration
	gain float64 // Linear amplitude in [0, 1]
}

// recipes describes how each cue sounds.
var recipes = map[core.Cue][]note{
	core.CueStartup: {
		{freq: 523.25, dur: 120 * time.Millisecond, gain: 0.6},
		{freq: 659.25, dur: 120 * time.Millisecond, gain: 0.6},
		{freq: 783.99, dur: 240 * time.Millisecond, gain: 0.6},
	},
	core.CueMove: {
		{freq: 110, dur: 60 * time.Millisecond, gain: 0.5},
	},
	core.CueShoot: {
		{freq: 1320, dur: 40 * time.Millisecond, gain: 0.4},
		{freq: 990, dur: 40 * time.Millisecond, gain: 0.3},
	},
	core.CueExplosion1: {
		{dur: 250 * time.Millisecond, gain: 0.5},
	},
	core.CueExplosion2: {
		{dur: 120 * time.Millisecond, gain: 0.5},
		{freq: 70, dur: 130 * time.Millisecond, gain: 0.6},
	},
	core.CueVictory: {
		{freq: 523.25, dur: 150 * time.Millisecond, gain: 0.6},
		{freq: 659.25, dur: 150 * time.Millisecond, gain: 0.6},
		{freq: 783.99, dur: 150 * time.Millisecond, gain: 0.6},
		{freq: 1046.5, dur: 450 * time.Millisecond, gain: 0.6},
	},
	core.CueGameOver: {
		{freq: 392, dur: 200 * time.Millisecond, gain: 0.6},
		{freq: 311.13, dur: 200 * time.Millisecond, gain: 0.6},
		{freq: 261.63, dur: 200 * time.Millisecond, gain: 0.6},
		{freq: 196, dur: 500 * time.Millisecond, gain: 0.6},
	},
}

// Duration returns how long a cue plays, or 0 for an unknown cue.
func Duration(c core.Cue) time.Duration {
	var d time.Duration
	for _, n := range recipes[c] {
		d += n.dur
	}
	return d
}

// Synthesize builds a finite streamer for the cue. volume is a log2 gain
// applied on top of the recipe.
func Synthesize(c core.Cue, volume float64, rng *rand.Rand) (beep.Streamer, error) {
	notes, ok := recipes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := n.streamer(rng)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		parts = append(parts, s)
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// streamer renders the note with a short fade-out so steps do not click.
func (n note) streamer(rng *rand.Rand) (beep.Streamer, error) {
	samples := SampleRate.N(n.dur)

	var src beep.Streamer
	if n.freq == 0 {
		src = &noise{rng: rng}
	} else {
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		src = tone
	}

	return &fade{
		streamer: beep.Take(samples, src),
		total:    samples,
		gain:     n.gain,
	}, nil
}

// noise generates white noise without end.
type noise struct {
	rng *rand.Rand
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// fade scales a finite stream by gain and ramps it down to silence over its
// last quarter.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	gain     float64
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	release := f.total / 4
	for i := 0; i < n; i++ {
		vol := f.gain
		if left := f.total - f.position; release > 0 && left < release {
			vol *= float64(left) / float64(release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
