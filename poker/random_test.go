package poker

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomHandAlwaysParses(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))

	for range 10000 {
		s := RandomHand(rng)
		require.Len(t, s, 4)
		_, err := ParseHand(s)
		require.NoError(t, err, "RandomHand produced %q", s)
	}
}

func TestRandomHandDeterministic(t *testing.T) {
	t.Parallel()
	a := rand.New(rand.NewPCG(42, 7))
	b := rand.New(rand.NewPCG(42, 7))

	for range 100 {
		require.Equal(t, RandomHand(a), RandomHand(b))
	}
}

func TestRandomHandCoversAllRanksAndSuits(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 4))
	seenRanks := map[byte]bool{}
	seenSuits := map[byte]bool{}

	for range 5000 {
		s := RandomHand(rng)
		seenRanks[s[0]], seenRanks[s[2]] = true, true
		seenSuits[s[1]], seenSuits[s[3]] = true, true
	}

	require.Len(t, seenRanks, 13)
	require.Len(t, seenSuits, 4)
}

func TestSuitNextWraps(t *testing.T) {
	t.Parallel()
	require.Equal(t, Diamonds, Clubs.Next())
	require.Equal(t, Clubs, Spades.Next())
}
