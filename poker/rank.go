package poker

// Rank is a card rank. Values run Two=2 through Ace=14 so that a larger rank
// is a stronger card.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// rankOrder lists every rank from highest to lowest. A rank's position in
// this table is its order index.
var rankOrder = [...]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

const rankChars = "AKQJT98765432"

// Ranks returns all ranks ordered from Ace down to Two.
func Ranks() []Rank {
	out := make([]Rank, len(rankOrder))
	copy(out, rankOrder[:])
	return out
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Index returns the 0-based order index: 0 for Ace through 12 for Two.
func (r Rank) Index() int {
	return int(Ace) - int(r)
}

// rankAt returns the rank at order index i, clamped to the table.
func rankAt(i int) Rank {
	return rankOrder[max(0, min(i, len(rankOrder)-1))]
}

// Lower returns the rank one step toward Two. Two stays Two.
func (r Rank) Lower() Rank {
	return rankAt(r.Index() + 1)
}

// Higher returns the rank one step toward Ace. Ace stays Ace.
func (r Rank) Higher() Rank {
	return rankAt(r.Index() - 1)
}

// Broadway reports whether r is one of A, K, Q, J or T.
func (r Rank) Broadway() bool {
	return r >= Ten && r <= Ace
}

// Wheel reports whether r can take part in an A-5 straight.
func (r Rank) Wheel() bool {
	return r == Ace || (r >= Two && r <= Five)
}

// Distance returns the number of steps between two ranks in the order table.
func Distance(a, b Rank) int {
	d := a.Index() - b.Index()
	if d < 0 {
		return -d
	}
	return d
}

// String returns the single character symbol for the rank ("A", "T", "2").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r.Index()])
}

// Name returns the English name of the rank, used for labels like "Pocket Sevens".
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	case Two:
		return "Two"
	default:
		return "Unknown"
	}
}

// Plural returns the plural name of the rank ("Sixes", "Aces").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// parseRank maps a rank character, in either case, to a Rank.
func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), true
	}
	return 0, false
}
