package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lox/flopguide/advice"
	"github.com/lox/flopguide/internal/clip"
	"github.com/lox/flopguide/poker"
)

// AdviseCmd renders advice for hands given on the command line
type AdviseCmd struct {
	Hands []string `kong:"arg,help='Hands such as Js9s, \"AhKh\" or \"7c 7d\"'"`
	JSON  bool     `kong:"name='json',help='Emit JSON instead of styled columns'"`
	Copy  bool     `kong:"help='Copy the last hand and its advice to the clipboard'"`
}

// adviceResult is the JSON shape of one advised hand
type adviceResult struct {
	Input    string         `json:"input"`
	Hand     string         `json:"hand,omitempty"`
	Label    string         `json:"label,omitempty"`
	Category string         `json:"category,omitempty"`
	Bundle   *advice.Bundle `json:"bundle,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ErrInvalidHands is returned when at least one argument failed to parse.
var ErrInvalidHands = errors.New("one or more hands could not be parsed")

func (c *AdviseCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg, g.errOut()).WithPrefix("advise")
	renderer := newRenderer(cfg, g.out())

	var (
		results []adviceResult
		text    string
		failed  bool
	)
	for _, input := range c.Hands {
		hand, err := poker.ParseHand(input)
		if err != nil {
			failed = true
			logger.Warn("Invalid hand", "input", input, "error", err)
			results = append(results, adviceResult{Input: input, Error: err.Error()})
			continue
		}

		bundle := advice.Generate(hand)
		logger.Debug("Generated advice", "hand", hand, "label", hand.Label())
		results = append(results, adviceResult{
			Input:    input,
			Hand:     hand.String(),
			Label:    hand.Label(),
			Category: string(hand.Category()),
			Bundle:   &bundle,
		})
		text = bundle.Text(hand)

		if !c.JSON {
			fmt.Fprintln(g.out(), renderer.Bundle(hand, bundle))
		}
	}

	if c.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode advice: %w", err)
		}
	} else if failed {
		fmt.Fprintln(g.out(), renderer.HowTo())
	}

	if c.Copy && text != "" {
		if clip.Copy(logger, g.copier(), strings.TrimRight(text, "\n")) {
			logger.Info("Copied advice to clipboard")
		}
	}

	if failed {
		return ErrInvalidHands
	}
	return nil
}
