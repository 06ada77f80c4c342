package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain streams s to completion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestSynthesizeEveryCue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, c := range core.Cues {
		t.Run(string(c), func(t *testing.T) {
			s, err := Synthesize(c, 0, rng)
			if err != nil {
				t.Fatalf("Synthesize() failed: %v", err)
			}

			expected := 0
			for _, n := range recipes[c] {
				expected += SampleRate.N(n.dur)
			}

			got, peak := drain(t, s)
			if got != expected {
				t.Errorf("streamed %d samples, expected %d", got, expected)
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
			if peak > 1 {
				t.Errorf("peak %f exceeds full scale", peak)
			}
		})
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if _, err := Synthesize(core.Cue("laser"), 0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for an unknown cue")
	}
}

func TestSynthesizeVolume(t *testing.T) {
	quiet, err := Synthesize(core.CueMove, -2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Synthesize() failed: %v", err)
	}
	loud, err := Synthesize(core.CueMove, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Synthesize() failed: %v", err)
	}

	_, quietPeak := drain(t, quiet)
	_, loudPeak := drain(t, loud)
	if quietPeak >= loudPeak {
		t.Errorf("volume -2 peak %f should be below volume 0 peak %f", quietPeak, loudPeak)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		cue      core.Cue
		expected time.Duration
	}{
		{core.CueMove, 60 * time.Millisecond},
		{core.CueExplosion1, 250 * time.Millisecond},
		{core.CueExplosion2, 250 * time.Millisecond},
		{core.CueGameOver, 1100 * time.Millisecond},
		{core.Cue("laser"), 0},
	}

	for _, tt := range tests {
		if got := Duration(tt.cue); got != tt.expected {
			t.Errorf("Duration(%q) = %v, expected %v", tt.cue, got, tt.expected)
		}
	}
}

func TestFadeEndsSilent(t *testing.T) {
	total := SampleRate.N(20 * time.Millisecond)
	f := &fade{
		streamer: beep.Take(total, &noise{rng: rand.New(rand.NewSource(3))}),
		total:    total,
		gain:     1,
	}

	buf := make([][2]float64, total)
	n, _ := f.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d samples, expected %d", n, total)
	}

	last := buf[n-1][0]
	if last < 0 {
		last = -last
	}
	if limit := 1 / float64(total/4); last > limit {
		t.Errorf("last sample %f should be near silence", last)
	}
}
