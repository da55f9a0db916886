package main

import (
	"fmt"

	"github.com/lox/flopguide/advice"
	"github.com/lox/flopguide/poker"
)

// RandomCmd deals random hands
type RandomCmd struct {
	Count  int  `kong:"short='n',default='1',help='Number of hands to deal'"`
	Advise bool `kong:"help='Render advice for each hand'"`
}

func (c *RandomCmd) Run(g *Globals) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg, g.errOut()).WithPrefix("random")
	rng := g.newRNG(cfg, logger)
	renderer := newRenderer(cfg, g.out())

	for range c.Count {
		raw := poker.RandomHand(rng)
		if !c.Advise {
			fmt.Fprintln(g.out(), raw)
			continue
		}
		hand, err := poker.ParseHand(raw)
		if err != nil {
			return fmt.Errorf("failed to parse random hand %q: %w", raw, err)
		}
		fmt.Fprintln(g.out(), renderer.Bundle(hand, advice.Generate(hand)))
	}
	return nil
}
