package advice

import "github.com/lox/flopguide/poker"

// Shape is the structural class of a starting hand. It is one of PocketPair,
// Suited or Offsuit.
type Shape interface {
	shape()
}

// PocketPair is a hand holding two cards of one rank.
type PocketPair struct {
	Rank poker.Rank
}

// Suited is a non-pair hand whose cards share a suit.
type Suited struct {
	High poker.Rank
	Low  poker.Rank
	Gap  int
	Suit poker.Suit
}

// Offsuit is a non-pair hand with two different suits.
type Offsuit struct {
	High poker.Rank
	Low  poker.Rank
	Gap  int
}

func (PocketPair) shape() {}
func (Suited) shape()     {}
func (Offsuit) shape()    {}

// Classify returns the shape of h.
func Classify(h poker.Hand) Shape {
	switch {
	case h.Pair():
		return PocketPair{Rank: h.High()}
	case h.Suited():
		return Suited{High: h.High(), Low: h.Low(), Gap: h.Gap(), Suit: h.First().Suit}
	default:
		return Offsuit{High: h.High(), Low: h.Low(), Gap: h.Gap()}
	}
}
