package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/flopguide/internal/tui"
)

// TUICmd runs the interactive advice browser
type TUICmd struct {
	Hand    string `kong:"help='Hand to show on start'"`
	LogFile string `kong:"type='path',help='Write logs to this file; the terminal is owned by the UI'"`
}

func (c *TUICmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(g.errOut(), "failed to close log file: %v\n", err)
			}
		}()
		logOut = f
	}

	logger := setupLogger(cfg, logOut).WithPrefix("main")
	logger.Info("Starting interactive session", "seed", cfg.Seed)

	model := tui.New(logger, newRenderer(cfg, g.out()), g.newRNG(cfg, logger), g.copier(), c.Hand)
	return tui.Run(model)
}
