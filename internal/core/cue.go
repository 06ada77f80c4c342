package core

// Cue names an audio trigger emitted on a gameplay event.
type Cue string

const (
	CueStartup    Cue = "startup"
	CueMove       Cue = "move"
	CueShoot      Cue = "shoot"
	CueExplosion1 Cue = "explosion1"
	CueExplosion2 Cue = "explosion2"
	CueVictory    Cue = "victory"
	CueGameOver   Cue = "gameover"
)

// Cues lists every cue the game can emit.
var Cues = []Cue{CueStartup, CueMove, CueShoot, CueExplosion1, CueExplosion2, CueVictory, CueGameOver}

// CueSink accepts fire-and-forget cue triggers. Implementations must not
// block the caller and never report playback outcome.
type CueSink interface {
	Play(c Cue)
}

// NopSink discards every cue.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Cue) {}
