package poker

import (
	rand "math/rand/v2"
)

// RandomHand returns a random hand string such as "Td4c". Ranks and suits are
// drawn uniformly and independently; if both cards come out identical the
// second suit is advanced by one so the result always parses. There is no
// deck, so repeated calls can return overlapping cards.
func RandomHand(rng *rand.Rand) string {
	r1 := rankOrder[rng.IntN(len(rankOrder))]
	r2 := rankOrder[rng.IntN(len(rankOrder))]
	s1 := Suit(rng.IntN(numSuits))
	s2 := Suit(rng.IntN(numSuits))

	if r1 == r2 && s1 == s2 {
		s2 = s2.Next()
	}

	return NewCard(r1, s1).String() + NewCard(r2, s2).String()
}
