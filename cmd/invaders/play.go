package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	gameterm "github.com/vovakirdan/tui-invaders/internal/platform/term"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls (default bindings, see 'invaders controls'):
  Left/H      - Move left
  Right/L     - Move right
  Space/Enter - Fire
  Esc/Q       - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runner holds what every round shares.
type runner struct {
	cfg    config.Config
	skin   invaders.Skin
	keys   *gameterm.KeyMapper
	cues   core.CueSink
	sound  *audio.Player // nil when muted or unavailable
	logger *log.Logger
}

func play() error {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg.Log, flagDebug)
	defer closeLog()
	logger.Info("starting", "config", src, "seed", flagSeed)

	if err := checkTerminal(); err != nil {
		return err
	}

	skin, err := invaders.SkinFromConfig(cfg.Glyphs)
	if err != nil {
		return fmt.Errorf("invalid glyphs: %w", err)
	}
	keys, err := gameterm.NewKeyMapper(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	if cfg.UI.ShowTitle {
		start, err := tui.RunTitle(skin, cfg.Keys)
		if err != nil {
			return fmt.Errorf("title screen: %w", err)
		}
		if !start {
			return nil
		}
	}

	p := &runner{cfg: cfg, skin: skin, keys: keys, cues: core.NopSink{}, logger: logger}
	if !flagMute && cfg.Audio.Enabled {
		sound, err := audio.Open(cfg.Audio, logger)
		if err != nil {
			logger.Warn("audio unavailable, playing muted", "error", err)
		} else {
			defer sound.Close()
			p.sound = sound
			p.cues = sound
		}
	}

	for {
		summary, err := p.round()
		if err != nil {
			return err
		}
		if !cfg.UI.ShowResult {
			return nil
		}

		again, err := tui.RunResult(summary)
		if err != nil {
			return fmt.Errorf("result screen: %w", err)
		}
		if !again {
			return nil
		}
	}
}

// round plays one game on a fresh screen. Cues still playing are awaited
// before the screen is torn down.
func (p *runner) round() (tui.Summary, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := invaders.New(p.skin)
	game.Reset(core.RuntimeConfig{TickSleep: core.TickSleep, Seed: seed})

	screen, err := gameterm.OpenScreen()
	if err != nil {
		return tui.Summary{}, err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p.cues.Play(core.CueStartup)
	res, err := gameterm.NewSession(screen, p.keys, p.cues, p.logger).Run(ctx, game)
	p.waitAudio()
	if err != nil {
		return tui.Summary{}, err
	}

	return tui.Summary{Outcome: res.Outcome, State: res.State, Final: res.Final}, nil
}

func (p *runner) waitAudio() {
	if p.sound == nil {
		return
	}
	timeout := time.Duration(p.cfg.Audio.WaitTimeoutMS) * time.Millisecond
	p.sound.Wait(timeout)
}

// checkTerminal fails when stdout is not a terminal large enough for the
// playfield and its border.
func checkTerminal() error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("stdout is not a terminal: %w", err)
	}

	minW, minH := gameterm.MinSize()
	if w < minW || h < minH {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minW, minH)
	}
	return nil
}
