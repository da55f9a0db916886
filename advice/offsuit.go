package advice

func offsuitAdvice(o Offsuit) Bundle {
	broadway := o.High.Broadway() && o.Low.Broadway()
	connected := o.Gap == 1

	var (
		title   string
		bullets []string
		second  string
	)
	switch {
	case broadway:
		title = "Top pair, strong kicker + broadway draws"
		bullets = []string{
			"Top pair with a broadway kicker is a value hand on most flops: bet two streets.",
			"Two broadway cards flop gutshots and open-enders on Q-J-x and J-T-x boards.",
		}
		below := o.Low.Lower()
		second = board(card(below, 'h'), card(below.Lower(), 'd'), "4c")
	case connected:
		title = "Two pair & open-enders"
		bullets = []string{
			"Connected cards flop open-ended straight draws and well-disguised two pair.",
			"Semi-bluff open-enders and value-bet two pair hard.",
		}
		second = board(card(o.High.Higher(), 'h'), card(o.Low.Lower(), 'd'), "2c")
	default:
		title = "Top pair or better"
		bullets = []string{
			"Without a suit or connectivity the hand needs top pair or two pair to continue.",
			"Bet top pair for value on dry boards and slow down once the board connects.",
		}
		second = board(card(o.High, 'h'), card(o.Low, 'd'), "2c")
	}

	return Bundle{
		Favorable: []Entry{{
			Title:   title,
			Bullets: bullets,
			Examples: literal(
				board(card(o.High, 'd'), "7c", "2s"),
				second,
			),
		}},
		Marginal: []Entry{{
			Title: "Top pair weak kicker / middle pair",
			Bullets: []string{
				"One pair without a good kicker wins small pots and loses big ones: check-call, do not raise.",
				"Without a backdoor draw you have few ways to improve past the turn.",
			},
			Examples: literal(
				board("Qd", "8c", "3h"),
				board("Jh", "9d", "4s"),
			),
		}},
		Unfavorable: []Entry{{
			Title: "Missed, coordinated boards",
			Bullets: []string{
				"Offsuit hands that miss a connected or two-tone board have almost no equity.",
				"Fold to a bet unless you picked up a pair plus a draw.",
			},
			Examples: literal(
				board("Jh", "Th", "9c"),
				board("8s", "7s", "6d"),
			),
		}},
	}
}
