// Package audio plays the game's sound cues on the system speaker. Cues are
// synthesized on demand; playback never blocks the caller.
package audio

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// bufferDuration is the speaker buffer length. Longer buffers add latency.
const bufferDuration = 100 * time.Millisecond

// Player is a core.CueSink backed by the speaker.
type Player struct {
	mu      sync.Mutex
	rng     *rand.Rand
	volume  float64
	logger  *log.Logger
	pending sync.WaitGroup
	closed  bool
}

// Open initializes the speaker. Callers fall back to core.NopSink when it
// fails, since a missing sound device must not stop the game.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := speaker.Init(SampleRate, SampleRate.N(bufferDuration)); err != nil {
		return nil, err
	}
	logger.Debug("speaker ready", "rate", int(SampleRate), "volume", cfg.Volume)

	return &Player{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		volume: cfg.Volume,
		logger: logger,
	}, nil
}

// Play starts a cue and returns immediately. Unknown cues are logged and
// skipped.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	s, err := Synthesize(c, p.volume, p.rng)
	if err != nil {
		p.logger.Warn("cannot play cue", "cue", c, "error", err)
		return
	}

	p.pending.Add(1)
	speaker.Play(beep.Seq(s, beep.Callback(p.pending.Done)))
}

// Wait blocks until every started cue has finished or timeout passes.
// Returns false on timeout.
func (p *Player) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		p.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		p.logger.Warn("cues still playing at exit", "timeout", timeout)
		return false
	}
}

// Close stops playback and releases the speaker. Later cues are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
