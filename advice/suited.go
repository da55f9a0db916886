package advice

import "github.com/lox/flopguide/poker"

func suitedAdvice(s Suited) Bundle {
	x := byte(HandSuit)
	low1 := s.Low.Lower()
	low2 := low1.Lower()
	high1 := s.High.Higher()
	other := s.Suit.Next().String()[0]

	hasStrongDraws := s.Gap == 1 || s.Gap == 2 || (s.High.Broadway() && s.Low.Broadway())

	var favorable []Entry
	if hasStrongDraws {
		favorable = append(favorable, Entry{
			Title: "Strong combo equity: open-enders, gutshots + backdoors",
			Bullets: []string{
				"A straight draw plus a flush draw is 12 to 15 outs: bet or raise it as a semi-bluff.",
				"Backdoor flush and straight draws add to weak pairs; keep betting good turns.",
				"With both draws, getting all-in on the flop is usually fine.",
			},
			Examples: suited(s.Suit,
				board(card(s.Low, x), card(low1, x), card(low2, x)),
				board(card(high1, x), card(s.Low, x), card(low1, x)),
				board(card(high1, x), card(s.Low, x), card(low2, x)),
			),
		})
	}

	favorable = append(favorable, Entry{
		Title: "Top two or better: build the pot",
		Bullets: []string{
			"Two pair or trips is rarely behind on the flop: bet for value on every street.",
			"Trips on a paired board still play as a big hand with your kicker.",
			"Size up on wet boards so flush and straight draws pay to continue.",
		},
		Examples: literal(
			board(card(s.High, 'c'), card(s.Low, 'd'), "2h"),
			board(card(s.High, 'd'), card(s.High, 'c'), "7h"),
		),
	})

	switch {
	case s.High == poker.Ace:
		favorable = append(favorable, Entry{
			Title: "Nut flush draw + extras",
			Bullets: []string{
				"The nut flush draw with an overcard is a strong semi-bluff: take the betting lead.",
				"Pairing your kicker or picking up a gutshot adds outs; you can play a big pot.",
			},
			Examples: suited(s.Suit,
				board("K"+string(x), "7"+string(x), "2d"),
				board(card(s.Low, 'h'), "9"+string(x), "4"+string(x)),
			),
		})
	case !hasStrongDraws:
		// Gapped suited hands still flop pair plus flush draw. This entry is
		// what gives every non-ace suited hand without strong draws exactly two
		// favorable families.
		favorable = append(favorable, Entry{
			Title: "Pair + flush draw",
			Bullets: []string{
				"Top pair with a flush draw is strong enough to bet and raise.",
				"Without straight potential, the flush draw is what lets you play a bigger pot.",
			},
			Examples: suited(s.Suit,
				board(card(s.High, 'd'), "8"+string(x), "3"+string(x)),
				board(card(s.Low, 'h'), card(high1, x), "2"+string(x)),
			),
		})
	}

	return Bundle{
		Favorable: favorable,
		Marginal: []Entry{
			{
				Title: "Decent one pair + backdoors",
				Bullets: []string{
					"Top pair with a modest kicker or second pair with backdoors: play for pot control.",
					"Check-call or bet small; raise only when the turn adds a real draw.",
				},
				Examples: literal(
					board("Kd", "8c", "3s"),
					board("Qc", "7d", "2h"),
				),
			},
			{
				Title: "Non-nut flush draw with extras",
				Bullets: []string{
					"A flush draw below the nut plays best with extra equity: overcards, a pair or a gutshot.",
					"Avoid stacking off against heavy action; bigger flush draws dominate you.",
				},
				Examples: suited(s.Suit,
					board("A"+string(x), "8"+string(x), "3c"),
					board("K"+string(x), "6"+string(x), "2d"),
				),
			},
		},
		Unfavorable: []Entry{
			{
				Title: "Dry high-card boards",
				Bullets: []string{
					"Ace-high and king-high rainbow boards leave you with no pair and no draw.",
					"Check and give up unless the board clearly favours your range.",
				},
				Examples: literal(
					board("Ac", "Kd", "7h"),
					board("Ks", "Qc", "2d"),
				),
			},
			{
				Title: "Monotone boards without the nut",
				Bullets: []string{
					"Three cards of a suit you do not hold kill most of your pairs and draws.",
					"Keep the pot small; a single card of the suit in villain's hand beats you.",
				},
				Examples: literal(
					board(card(s.High, other), card(low1, other), "2"+string(other)),
					board(card(high1, other), card(s.Low, other), card(low2, other)),
				),
			},
		},
	}
}
