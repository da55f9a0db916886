package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// Category provides a simple preflop strength bucket for the hand.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77+, suited broadway),
// Weak (small pairs, suited connectors and one-gappers), Trash (everything else).
func (h Hand) Category() HoleCardCategory {
	high, low := h.High(), h.Low()

	switch {
	case h.pair && high >= Jack:
		return CategoryPremium
	case high == Ace && low == King:
		return CategoryPremium
	case h.pair && high == Ten:
		return CategoryStrong
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case h.pair && high >= Seven:
		return CategoryMedium
	case h.suited && low.Broadway():
		return CategoryMedium
	case h.pair:
		return CategoryWeak
	case h.suited && h.gap <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
