package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankIndex(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Ace.Index())
	assert.Equal(t, 4, Ten.Index())
	assert.Equal(t, 12, Two.Index())

	for i, r := range Ranks() {
		assert.Equal(t, i, r.Index(), "rank %s", r)
	}
}

func TestRankStepping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank   Rank
		lower  Rank
		higher Rank
	}{
		{Ace, King, Ace},
		{King, Queen, Ace},
		{Ten, Nine, Jack},
		{Three, Two, Four},
		{Two, Two, Three},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.lower, tt.rank.Lower())
			assert.Equal(t, tt.higher, tt.rank.Higher())
		})
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Distance(Seven, Seven))
	assert.Equal(t, 2, Distance(Jack, Nine))
	assert.Equal(t, 2, Distance(Nine, Jack))
	assert.Equal(t, 12, Distance(Ace, Two))
}

func TestRankPredicates(t *testing.T) {
	t.Parallel()
	broadway := map[Rank]bool{Ace: true, King: true, Queen: true, Jack: true, Ten: true}
	wheel := map[Rank]bool{Ace: true, Five: true, Four: true, Three: true, Two: true}

	for _, r := range Ranks() {
		assert.Equal(t, broadway[r], r.Broadway(), "Broadway(%s)", r)
		assert.Equal(t, wheel[r], r.Wheel(), "Wheel(%s)", r)
	}
}

func TestRankString(t *testing.T) {
	t.Parallel()
	got := ""
	for _, r := range Ranks() {
		got += r.String()
	}
	assert.Equal(t, "AKQJT98765432", got)
	assert.Equal(t, "?", Rank(0).String())
	assert.Equal(t, "Sixes", Six.Plural())
	assert.Equal(t, "Sevens", Seven.Plural())
}
