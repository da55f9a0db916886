package advice

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lox/flopguide/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongComboTitle = "Strong combo equity"

func mustHand(t *testing.T, s string) poker.Hand {
	t.Helper()
	h, err := poker.ParseHand(s)
	require.NoError(t, err)
	return h
}

func allHands() []poker.Hand {
	var deck []poker.Card
	for _, r := range poker.Ranks() {
		for _, s := range poker.Suits() {
			deck = append(deck, poker.NewCard(r, s))
		}
	}
	var hands []poker.Hand
	for i := range deck {
		for j := i + 1; j < len(deck); j++ {
			hands = append(hands, poker.NewHand(deck[i], deck[j]))
		}
	}
	return hands
}

func titles(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func hasTitle(entries []Entry, prefix string) bool {
	for _, e := range entries {
		if strings.HasPrefix(e.Title, prefix) {
			return true
		}
	}
	return false
}

func TestGenerateSuitedOneGapper(t *testing.T) {
	b := Generate(mustHand(t, "Js9s"))

	require.Len(t, b.Favorable, 2)
	assert.True(t, strings.HasPrefix(b.Favorable[0].Title, strongComboTitle))
	assert.Equal(t, []string{"9♠ 8♠ 7♠", "Q♠ 9♠ 8♠", "Q♠ 9♠ 7♠"}, b.Favorable[0].Examples)
	assert.Equal(t, "Top two or better: build the pot", b.Favorable[1].Title)
	assert.Equal(t, []string{"J♣ 9♦ 2♥", "J♦ J♣ 7♥"}, b.Favorable[1].Examples)

	require.Len(t, b.Marginal, 2)
	assert.Equal(t, "Decent one pair + backdoors", b.Marginal[0].Title)
	assert.Equal(t, "Non-nut flush draw with extras", b.Marginal[1].Title)
	assert.Equal(t, []string{"A♠ 8♠ 3♣", "K♠ 6♠ 2♦"}, b.Marginal[1].Examples)

	require.Len(t, b.Unfavorable, 2)
	assert.Equal(t, "Dry high-card boards", b.Unfavorable[0].Title)
	assert.Equal(t, []string{"A♣ K♦ 7♥", "K♠ Q♣ 2♦"}, b.Unfavorable[0].Examples)
	assert.Equal(t, "Monotone boards without the nut", b.Unfavorable[1].Title)
	assert.Equal(t, []string{"J♣ 8♣ 2♣", "Q♣ 9♣ 7♣"}, b.Unfavorable[1].Examples)
}

func TestGenerateSuitedAce(t *testing.T) {
	b := Generate(mustHand(t, "AhKh"))
	assert.Equal(t, []string{
		"Strong combo equity: open-enders, gutshots + backdoors",
		"Top two or better: build the pot",
		"Nut flush draw + extras",
	}, titles(b.Favorable))
	assert.Equal(t, []string{"K♥ 7♥ 2♦", "K♥ 9♥ 4♥"}, b.Favorable[2].Examples)

	b = Generate(mustHand(t, "Ad8d"))
	assert.Equal(t, []string{"Top two or better: build the pot", "Nut flush draw + extras"}, titles(b.Favorable))
}

func TestGenerateSuitedGapped(t *testing.T) {
	b := Generate(mustHand(t, "Kc7c"))
	assert.Equal(t, []string{"Top two or better: build the pot", "Pair + flush draw"}, titles(b.Favorable))
	assert.Equal(t, []string{"K♦ 8♣ 3♣", "7♥ A♣ 2♣"}, b.Favorable[1].Examples)
}

func TestGeneratePocketPair(t *testing.T) {
	b := Generate(mustHand(t, "7c7d"))

	require.Len(t, b.Favorable, 1)
	require.Len(t, b.Marginal, 1)
	require.Len(t, b.Unfavorable, 1)

	assert.Contains(t, b.Favorable[0].Title, "Sets & overpairs")
	assert.Equal(t, []string{"7♠ 6♦ 5♣", "7♥ 4♦ 4♣"}, b.Favorable[0].Examples)
	assert.Contains(t, b.Favorable[0].Bullets[0], "Sevens")
	assert.Equal(t, []string{"8♠ 8♦ 7♣", "9♥ 8♣ 7♦"}, b.Marginal[0].Examples)
	assert.Equal(t, []string{"A♠ K♦ 2♣", "Q♥ J♥ T♣"}, b.Unfavorable[0].Examples)
}

func TestPocketPairOvercardAnchor(t *testing.T) {
	tests := []struct {
		hand   string
		anchor string
	}{
		{"2c2d", "2♣"},
		{"9c9d", "2♣"},
		{"TcTd", "8♣"},
		{"QcQd", "8♣"},
		{"AcAd", "8♣"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			b := Generate(mustHand(t, tt.hand))
			assert.Equal(t, "A♠ K♦ "+tt.anchor, b.Unfavorable[0].Examples[0])
		})
	}
}

func TestPocketPairClampsAtEdges(t *testing.T) {
	b := Generate(mustHand(t, "2h2s"))
	assert.Equal(t, "2♠ 2♦ 2♣", b.Favorable[0].Examples[0])

	b = Generate(mustHand(t, "AhAs"))
	assert.Equal(t, []string{"A♠ A♦ A♣", "A♥ A♣ A♦"}, b.Marginal[0].Examples)
}

func TestGenerateOffsuit(t *testing.T) {
	tests := []struct {
		hand   string
		title  string
		second string
	}{
		{"AhKd", "Top pair, strong kicker + broadway draws", "Q♥ J♦ 4♣"},
		{"9h8d", "Two pair & open-enders", "T♥ 7♦ 2♣"},
		{"Kh7d", "Top pair or better", "K♥ 7♦ 2♣"},
		{"5h4d", "Two pair & open-enders", "6♥ 3♦ 2♣"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h := mustHand(t, tt.hand)
			b := Generate(h)

			require.Len(t, b.Favorable, 1)
			assert.Equal(t, tt.title, b.Favorable[0].Title)
			require.Len(t, b.Favorable[0].Examples, 2)
			assert.Equal(t, h.High().String()+"♦ 7♣ 2♠", b.Favorable[0].Examples[0])
			assert.Equal(t, tt.second, b.Favorable[0].Examples[1])

			require.Len(t, b.Marginal, 1)
			assert.Len(t, b.Marginal[0].Examples, 2)
			require.Len(t, b.Unfavorable, 1)
			assert.Equal(t, []string{"J♥ T♥ 9♣", "8♠ 7♠ 6♦"}, b.Unfavorable[0].Examples)
		})
	}
}

func TestGenerateAllHands(t *testing.T) {
	glyphs := "♣♦♥♠"
	hands := allHands()
	require.Len(t, hands, 1326)

	for _, h := range hands {
		b := Generate(h)
		for _, tier := range Tiers {
			entries := b.Tier(tier)
			require.NotEmpty(t, entries, "%s has no %s entries", h, tier)

			for _, e := range entries {
				require.NotEmpty(t, e.Title)
				require.NotEmpty(t, e.Bullets)
				require.LessOrEqual(t, len(e.Examples), MaxExamples)
				for _, ex := range e.Examples {
					for _, tok := range strings.Fields(ex) {
						require.Equal(t, 2, utf8.RuneCountInString(tok), "%s: bad token %q in %q", h, tok, ex)
						_, size := utf8.DecodeRuneInString(tok)
						require.Contains(t, glyphs, tok[size:], "%s: unrendered suit in %q", h, ex)
					}
				}
			}
		}

		if h.Pair() {
			assert.Equal(t, 0, h.Gap())
			assert.Contains(t, b.Favorable[0].Title, "Sets & overpairs")
		}
	}
}

func TestSuitedFavorableEntries(t *testing.T) {
	for _, h := range allHands() {
		if !h.Suited() {
			continue
		}
		b := Generate(h)
		strong := h.Gap() == 1 || h.Gap() == 2 || (h.High().Broadway() && h.Low().Broadway())

		assert.Equal(t, strong, hasTitle(b.Favorable, strongComboTitle), "%s", h.Label())
		assert.True(t, hasTitle(b.Favorable, "Top two or better"), "%s", h.Label())
		assert.Equal(t, h.High() == poker.Ace, hasTitle(b.Favorable, "Nut flush draw"), "%s", h.Label())

		if !strong && h.High() != poker.Ace {
			assert.Len(t, b.Favorable, 2, "%s", h.Label())
		}
	}
}

func TestGenerateReturnsFreshSlices(t *testing.T) {
	h := mustHand(t, "Js9s")
	a := Generate(h)
	a.Favorable[0].Examples[0] = "mutated"
	a.Marginal[0].Bullets[0] = "mutated"

	b := Generate(h)
	assert.Equal(t, "9♠ 8♠ 7♠", b.Favorable[0].Examples[0])
	assert.NotEqual(t, "mutated", b.Marginal[0].Bullets[0])
}

func TestBundleText(t *testing.T) {
	h := mustHand(t, "7c7d")
	text := Generate(h).Text(h)

	assert.True(t, strings.HasPrefix(text, "77 (7♦ 7♣)\n"))
	assert.Contains(t, text, "\nFAVORABLE\n- Sets & overpairs: value-bet\n")
	assert.Contains(t, text, "\nMARGINAL\n")
	assert.Contains(t, text, "\nUNFAVORABLE\n")
	assert.Contains(t, text, "  e.g. 7♠ 6♦ 5♣ | 7♥ 4♦ 4♣\n")
}

func TestEntryTopExamples(t *testing.T) {
	e := Entry{Examples: []string{"a", "b", "c", "d", "e", "f", "g"}}
	assert.Len(t, e.TopExamples(MaxExamples), 6)
	assert.Len(t, e.TopExamples(10), 7)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "favorable", Favorable.String())
	assert.Equal(t, "marginal", Marginal.String())
	assert.Equal(t, "unfavorable", Unfavorable.String())
	assert.Nil(t, Bundle{}.Tier(Tier(9)))
}

func entryByTitle(t *testing.T, entries []Entry, prefix string) Entry {
	t.Helper()
	for _, e := range entries {
		if strings.HasPrefix(e.Title, prefix) {
			return e
		}
	}
	require.Failf(t, "entry not found", "no entry titled %q", prefix)
	return Entry{}
}

func TestPocketPairMarginalBoardsCarryPocketRank(t *testing.T) {
	for _, h := range allHands() {
		if !h.Pair() {
			continue
		}
		r := h.High()
		above := r.Higher().String()
		for _, ex := range Generate(h).Marginal[0].Examples {
			assert.Contains(t, ex, r.String(), "%s: %q", h.Label(), ex)
			assert.True(t, strings.HasPrefix(ex, above) || strings.HasPrefix(ex, r.Higher().Higher().String()),
				"%s: %q should lead with an overcard", h.Label(), ex)
		}
	}
}

func TestStrongDrawBoardsUseHandSuit(t *testing.T) {
	for _, h := range allHands() {
		if !h.Suited() {
			continue
		}
		b := Generate(h)
		if !hasTitle(b.Favorable, strongComboTitle) {
			continue
		}

		glyph := h.First().Suit.Glyph()
		e := entryByTitle(t, b.Favorable, strongComboTitle)
		require.Len(t, e.Examples, 3)
		for _, ex := range e.Examples {
			assert.Contains(t, ex, h.Low().String()+glyph, "%s: %q", h.Label(), ex)
			for _, tok := range strings.Fields(ex) {
				assert.True(t, strings.HasSuffix(tok, glyph), "%s: %q has an off-suit card", h.Label(), ex)
			}
		}
	}
}

func TestMonotoneBoardsAvoidHandSuit(t *testing.T) {
	for _, h := range allHands() {
		if !h.Suited() {
			continue
		}

		glyph := h.First().Suit.Glyph()
		other := h.First().Suit.Next().Glyph()
		e := entryByTitle(t, Generate(h).Unfavorable, "Monotone boards without the nut")
		require.Len(t, e.Examples, 2)
		for _, ex := range e.Examples {
			assert.NotContains(t, ex, glyph, "%s: %q", h.Label(), ex)
			for _, tok := range strings.Fields(ex) {
				assert.True(t, strings.HasSuffix(tok, other), "%s: %q is not monotone", h.Label(), ex)
			}
		}
	}
}
