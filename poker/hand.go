package poker

import (
	"strings"
	"unicode"
)

// Hand is a two-card starting hand. Cards are stored in a canonical order
// (higher rank first, pairs by suit) so two hands holding the same cards
// compare equal with ==.
type Hand struct {
	cards  [2]Card
	suited bool
	pair   bool
	gap    int
}

// NewHand builds a hand from two cards. The cards must be distinct; use
// ParseHand for untrusted input.
func NewHand(a, b Card) Hand {
	if b.Rank > a.Rank || (b.Rank == a.Rank && b.Suit > a.Suit) {
		a, b = b, a
	}
	return Hand{
		cards:  [2]Card{a, b},
		suited: a.Suit == b.Suit,
		pair:   a.Rank == b.Rank,
		gap:    Distance(a.Rank, b.Rank),
	}
}

// ParseHand parses user-entered text such as "Js9s", " jS 9S " or "7c7d".
// All whitespace is ignored and matching is case-insensitive. Failures are
// always a *ParseError.
func ParseHand(raw string) (Hand, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	runes := []rune(stripped)
	if len(runes) != 4 {
		return Hand{}, &ParseError{Kind: InvalidLength, Input: raw}
	}

	var cards [2]Card
	for i := range cards {
		card, ok := parseCardRunes(runes[i*2], runes[i*2+1])
		if !ok {
			return Hand{}, &ParseError{Kind: InvalidFormat, Input: raw}
		}
		cards[i] = card
	}

	if cards[0] == cards[1] {
		return Hand{}, &ParseError{Kind: DuplicateCard, Input: raw}
	}

	return NewHand(cards[0], cards[1]), nil
}

func parseCardRunes(rank, suit rune) (Card, bool) {
	if rank > unicode.MaxASCII || suit > unicode.MaxASCII {
		return Card{}, false
	}
	r, ok := parseRank(byte(rank))
	if !ok {
		return Card{}, false
	}
	s, ok := ParseSuit(byte(suit))
	if !ok {
		return Card{}, false
	}
	return NewCard(r, s), true
}

// Cards returns both cards, higher rank first.
func (h Hand) Cards() [2]Card {
	return h.cards
}

// First returns the first card in canonical order.
func (h Hand) First() Card {
	return h.cards[0]
}

// High returns the higher rank. For pairs High and Low are equal.
func (h Hand) High() Rank {
	return h.cards[0].Rank
}

// Low returns the lower rank.
func (h Hand) Low() Rank {
	return h.cards[1].Rank
}

// Suited reports whether both cards share a suit.
func (h Hand) Suited() bool {
	return h.suited
}

// Pair reports whether both cards share a rank.
func (h Hand) Pair() bool {
	return h.pair
}

// Gap is the rank order distance between the two cards, 0 for pairs.
func (h Hand) Gap() int {
	return h.gap
}

// String returns the two canonical card tokens concatenated, e.g. "Js9s".
// The result always parses back to an equal Hand.
func (h Hand) String() string {
	return h.cards[0].String() + h.cards[1].String()
}

// Glyph returns the display form of both cards, e.g. "J♠ 9♠".
func (h Hand) Glyph() string {
	return h.cards[0].Glyph() + " " + h.cards[1].Glyph()
}

// Label returns the starting hand class: "77", "J9s" or "AKo".
func (h Hand) Label() string {
	switch {
	case h.pair:
		return h.High().String() + h.Low().String()
	case h.suited:
		return h.High().String() + h.Low().String() + "s"
	default:
		return h.High().String() + h.Low().String() + "o"
	}
}
