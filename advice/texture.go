package advice

import (
	"strings"

	"github.com/lox/flopguide/poker"
)

// HandSuit is the suit placeholder in a texture template that stands for the
// suit of the hand being advised.
const HandSuit = 'x'

// Format renders a texture template such as "9x 8x Kd rainbow" for display.
// Tokens are separated by spaces; a token is a card when it is a rank
// character followed by a suit letter or HandSuit. Card suits are replaced by
// glyphs, everything else passes through unchanged.
//
// The hand suit is substituted first and the literal suit letters second. A
// token rewritten by the first pass no longer looks like a card, so it can
// never be touched again by the second.
func Format(tmpl string, handSuit poker.Suit) string {
	tokens := strings.Fields(tmpl)
	for i, tok := range tokens {
		if rank, ok := cardToken(tok); ok && tok[1] == HandSuit {
			tokens[i] = rank + handSuit.Glyph()
		}
	}
	return formatSuits(tokens)
}

// FormatLiteral renders a template that has no hand suit placeholder.
func FormatLiteral(tmpl string) string {
	return formatSuits(strings.Fields(tmpl))
}

func formatSuits(tokens []string) string {
	for i, tok := range tokens {
		rank, ok := cardToken(tok)
		// Only lowercase suit letters are cards, so a word like "AS" survives.
		if !ok || tok[1] < 'a' {
			continue
		}
		if suit, ok := poker.ParseSuit(tok[1]); ok {
			tokens[i] = rank + suit.Glyph()
		}
	}
	return strings.Join(tokens, " ")
}

// cardToken reports whether tok is a two byte card token and returns its rank.
func cardToken(tok string) (string, bool) {
	if len(tok) != 2 || !strings.ContainsRune("AKQJT98765432", rune(tok[0])) {
		return "", false
	}
	return tok[:1], true
}

// board builds a template from card tokens.
func board(tokens ...string) string {
	return strings.Join(tokens, " ")
}

// card builds a single card token from a rank and a suit letter or HandSuit.
func card(r poker.Rank, suit byte) string {
	return r.String() + string(suit)
}

// suited formats each template against the hand suit.
func suited(handSuit poker.Suit, tmpls ...string) []string {
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = Format(t, handSuit)
	}
	return out
}

// literal formats templates that only use concrete suits.
func literal(tmpls ...string) []string {
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = FormatLiteral(t)
	}
	return out
}
