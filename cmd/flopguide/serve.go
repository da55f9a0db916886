package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/flopguide/internal/server"
)

// ServeCmd runs the websocket endpoint
type ServeCmd struct {
	Addr string `kong:"help='Listen address, overrides server { address port } in the config'"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg, g.errOut())

	addr := c.Addr
	if addr == "" {
		addr = cfg.ServerAddress()
	}

	s := server.NewServer(addr, logger, g.newRNG(cfg, logger), g.now())

	ctx := signalContext(logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// signalContext creates a context that is cancelled on interrupt signals
func signalContext(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received signal, shutting down gracefully", "signal", sig.String())
		cancel()
	}()

	return ctx
}
