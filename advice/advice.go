// Package advice maps a two-card starting hand to heuristic flop guidance.
//
// Generate returns a Bundle with three tiers of flop families: boards the hand
// likes, boards that call for care, and boards to get away from. Each Entry
// names the family, gives a few lines of guidance, and lists example boards
// built from the hand's own ranks and suit. Nothing here computes equity; the
// rules are a static table keyed on the hand's shape.
//
// Every function in this package is pure and safe for concurrent use.
package advice

import (
	"fmt"
	"strings"

	"github.com/lox/flopguide/poker"
)

// MaxExamples is the number of example boards a renderer shows per entry.
const MaxExamples = 6

// Entry is one flop family within a tier.
type Entry struct {
	Title    string   `json:"title"`
	Bullets  []string `json:"bullets"`
	Examples []string `json:"examples"`
}

// TopExamples returns at most n examples.
func (e Entry) TopExamples(n int) []string {
	if len(e.Examples) <= n {
		return e.Examples
	}
	return e.Examples[:n]
}

// Tier identifies one of the three columns of a Bundle.
type Tier int

const (
	Favorable Tier = iota
	Marginal
	Unfavorable
)

// Tiers lists the tiers in display order.
var Tiers = []Tier{Favorable, Marginal, Unfavorable}

func (t Tier) String() string {
	switch t {
	case Favorable:
		return "favorable"
	case Marginal:
		return "marginal"
	case Unfavorable:
		return "unfavorable"
	default:
		return "unknown"
	}
}

// Bundle is the full advice for one hand.
type Bundle struct {
	Favorable   []Entry `json:"favorable"`
	Marginal    []Entry `json:"marginal"`
	Unfavorable []Entry `json:"unfavorable"`
}

// Tier returns the entries for t.
func (b Bundle) Tier(t Tier) []Entry {
	switch t {
	case Favorable:
		return b.Favorable
	case Marginal:
		return b.Marginal
	case Unfavorable:
		return b.Unfavorable
	default:
		return nil
	}
}

// Generate builds the advice bundle for h. It never fails: every hand gets at
// least one entry in each tier.
func Generate(h poker.Hand) Bundle {
	switch s := Classify(h).(type) {
	case PocketPair:
		return pairAdvice(s)
	case Suited:
		return suitedAdvice(s)
	case Offsuit:
		return offsuitAdvice(s)
	default:
		panic(fmt.Sprintf("advice: unhandled shape %T", s))
	}
}

// Text renders the bundle as plain text headed by the hand's label, for
// copying outside the terminal.
func (b Bundle) Text(h poker.Hand) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", h.Label(), h.Glyph())
	for _, t := range Tiers {
		fmt.Fprintf(&sb, "\n%s\n", strings.ToUpper(t.String()))
		for _, e := range b.Tier(t) {
			fmt.Fprintf(&sb, "- %s\n", e.Title)
			for _, bullet := range e.Bullets {
				fmt.Fprintf(&sb, "  • %s\n", bullet)
			}
			if ex := e.TopExamples(MaxExamples); len(ex) > 0 {
				fmt.Fprintf(&sb, "  e.g. %s\n", strings.Join(ex, " | "))
			}
		}
	}
	return sb.String()
}
