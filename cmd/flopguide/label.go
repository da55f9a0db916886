package main

import (
	"fmt"

	"github.com/lox/flopguide/poker"
)

// LabelCmd prints the shorthand label of a hand
type LabelCmd struct {
	Hand    string `kong:"arg,help='Hand such as Js9s'"`
	Verbose bool   `kong:"short='V',help='Also print the canonical cards and category'"`
}

func (c *LabelCmd) Run(g *Globals) error {
	hand, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	if c.Verbose {
		fmt.Fprintf(g.out(), "%s\t%s\t%s\n", hand.Label(), hand.Glyph(), hand.Category())
		return nil
	}
	fmt.Fprintln(g.out(), hand.Label())
	return nil
}
