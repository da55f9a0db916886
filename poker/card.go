package poker

import "fmt"

// Suit is a card suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	suitChars = "cdhs"
	numSuits  = 4
)

// Suits returns all four suits in clubs, diamonds, hearts, spades order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < numSuits
}

// String returns the lowercase suit letter ("c", "d", "h", "s").
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitChars[s])
}

// Glyph returns the display symbol for the suit.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Next returns the following suit, wrapping from spades back to clubs.
func (s Suit) Next() Suit {
	return (s + 1) % numSuits
}

// ParseSuit maps a suit letter, in either case, to a Suit.
func ParseSuit(c byte) (Suit, bool) {
	switch c {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}

// Card is a playing card. The zero value is not a valid card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the canonical form of the card, e.g. "Js".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Glyph returns the display form of the card, e.g. "J♠".
func (c Card) Glyph() string {
	return c.Rank.String() + c.Suit.Glyph()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two character card such as "As" or "tD".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: must be 2 characters", s)
	}
	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[0])
	}
	suit, ok := ParseSuit(s[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
	}
	return NewCard(rank, suit), nil
}
