package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/flopguide/internal/clip"
	"github.com/lox/flopguide/internal/config"
	"github.com/lox/flopguide/internal/randutil"
	"github.com/lox/flopguide/internal/render"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `kong:"default='flopguide.hcl',type='path',help='HCL configuration file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed for random hands; 0 or unset derives one from the clock'"`
	EnvFile string `kong:"name='env-file',default='.env',help='Dotenv file with FLOPGUIDE_* overrides'"`
	NoColor bool   `kong:"name='no-color',help='Disable styled output'"`

	stdout io.Writer
	stderr io.Writer
	clock  quartz.Clock
	clip   clip.Copier
}

func (g *Globals) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

func (g *Globals) errOut() io.Writer {
	if g.stderr == nil {
		return os.Stderr
	}
	return g.stderr
}

func (g *Globals) now() quartz.Clock {
	if g.clock == nil {
		return quartz.NewReal()
	}
	return g.clock
}

func (g *Globals) copier() clip.Copier {
	if g.clip == nil {
		return clip.System{}
	}
	return g.clip
}

// loadConfig reads the config file, applies the environment and then flags.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.NoColor {
		off := false
		cfg.Display.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogger builds the process logger writing to w.
func setupLogger(cfg *config.Config, w io.Writer) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// newRNG seeds from the config, falling back to the clock.
func (g *Globals) newRNG(cfg *config.Config, logger *log.Logger) *rand.Rand {
	if cfg.Seed != 0 {
		logger.Debug("Using deterministic seed", "seed", cfg.Seed)
	} else {
		logger.Debug("Using clock-derived seed")
	}
	return randutil.Resolve(cfg.Seed, g.now())
}

func newRenderer(cfg *config.Config, w io.Writer) *render.Renderer {
	return render.New(w, render.Options{
		Width:       cfg.Display.Width,
		MaxExamples: cfg.Display.MaxExamples,
		Color:       cfg.ColorEnabled(),
	})
}
