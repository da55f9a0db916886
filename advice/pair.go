package advice

import (
	"fmt"

	"github.com/lox/flopguide/poker"
)

func pairAdvice(p PocketPair) Bundle {
	r := p.Rank
	below1 := r.Lower()
	below2 := below1.Lower()
	above1 := r.Higher()
	above2 := above1.Higher()

	// Pockets weaker than Tens see the overcard example anchored on a deuce,
	// Tens or better on an eight.
	anchor := poker.Eight
	if r.Index() > poker.Ten.Index() {
		anchor = poker.Two
	}

	return Bundle{
		Favorable: []Entry{{
			Title: "Sets & overpairs: value-bet",
			Bullets: []string{
				fmt.Sprintf("You flop a set of %s about one time in eight; when you do, build the pot.", r.Plural()),
				"When every board card is below your pair you hold an overpair: bet for value and protection.",
				"Rainbow and paired textures leave few draws against you, so size up.",
			},
			Examples: literal(
				board(card(r, 's'), card(below1, 'd'), card(below2, 'c')),
				board(card(r, 'h'), "4d", "4c"),
			),
		}},
		Marginal: []Entry{{
			Title: "Underpairs & paired boards: pot control",
			Bullets: []string{
				"One overcard on the flop often leaves your pair second best: check more and keep the pot small.",
				"A paired board above your pocket pair loses to any trips; call small bets and fold to pressure.",
				"Treat the pair as a bluff-catcher, not a value hand.",
			},
			Examples: literal(
				board(card(above1, 's'), card(above1, 'd'), card(r, 'c')),
				board(card(above2, 'h'), card(above1, 'c'), card(r, 'd')),
			),
		}},
		Unfavorable: []Entry{{
			Title: "Two+ overcards, wet textures",
			Bullets: []string{
				"Two or more overcards put you behind most continuing ranges: check and give up without a set.",
				"Connected two-tone boards give opponents many draws; do not pay off big bets with one pair.",
			},
			Examples: literal(
				board("As", "Kd", card(anchor, 'c')),
				board("Qh", "Jh", "Tc"),
			),
		}},
	}
}
