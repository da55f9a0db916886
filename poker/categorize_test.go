package poker

import (
	"testing"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected HoleCardCategory
	}{
		// Premium hands
		{"Pocket Aces", "AsAh", CategoryPremium},
		{"Pocket Kings", "KhKd", CategoryPremium},
		{"Pocket Jacks", "JhJd", CategoryPremium},
		{"Ace King suited", "AsKs", CategoryPremium},
		{"Ace King offsuit", "AcKh", CategoryPremium},

		// Strong hands
		{"Pocket Tens", "TcTh", CategoryStrong},
		{"Ace Queen offsuit", "AcQh", CategoryStrong},
		{"Ace Jack suited", "AsJs", CategoryStrong},

		// Medium hands
		{"Pocket Nines", "9c9h", CategoryMedium},
		{"Pocket Sevens", "7h7c", CategoryMedium},
		{"King Queen suited", "KsQs", CategoryMedium},
		{"Queen Jack suited", "QdJd", CategoryMedium},

		// Weak hands
		{"Pocket Sixes", "6c6h", CategoryWeak},
		{"Pocket Twos", "2c2h", CategoryWeak},
		{"Suited connectors 76s", "7h6h", CategoryWeak},
		{"Suited one-gapper J9s", "Js9s", CategoryWeak},

		// Trash hands
		{"Seven Two offsuit", "7c2h", CategoryTrash},
		{"Jack Four offsuit", "Jh4c", CategoryTrash},
		{"King Queen offsuit", "KcQh", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := ParseHand(tt.hand)
			if err != nil {
				t.Fatalf("Failed to parse hand: %v", err)
			}

			result := hand.Category()
			if result != tt.expected {
				t.Errorf("Category(%s) = %s, want %s", tt.hand, result, tt.expected)
			}
		})
	}
}
