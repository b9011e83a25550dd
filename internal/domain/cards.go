package domain

import "sort"

// Suit identifies one of the four card suits.
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// NoTrump marks comparisons where no trump suit applies.
const NoTrump Suit = -1

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	}
	return "?"
}

// Suits lists all suits in jack-ladder order (strongest jack first).
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

// Rank identifies one of the eight card ranks.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}

// Ranks lists all ranks.
var Ranks = []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card is an immutable rank/suit pair. Identity is value-based.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// CompareByRank orders two cards under the given announce and trump suit.
// Positive means a outranks b, negative means b outranks a, zero is a tie.
// In null games cards of different suits are incomparable and yield a tie;
// callers must not rely on cross-suit null comparisons to order tricks.
func CompareByRank(a, b Card, announce AnnounceType, trump Suit) int {
	if announce == AnnounceNull {
		if a.Suit != b.Suit {
			return 0
		}
		return nullRankPriority[b.Rank] - nullRankPriority[a.Rank]
	}

	aJack := a.Rank == Jack
	bJack := b.Rank == Jack
	if aJack && bJack {
		return jackSuitPriority[b.Suit] - jackSuitPriority[a.Suit]
	}
	if aJack {
		return 1
	}
	if bJack {
		return -1
	}

	aTrump := trump != NoTrump && a.Suit == trump
	bTrump := trump != NoTrump && b.Suit == trump
	if aTrump && !bTrump {
		return 1
	}
	if !aTrump && bTrump {
		return -1
	}
	if a.Suit != b.Suit {
		return 0
	}
	return trumpRankPriority[b.Rank] - trumpRankPriority[a.Rank]
}

// FilterByRank returns the cards holding the given rank.
func FilterByRank(cards []Card, rank Rank) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Rank == rank {
			out = append(out, c)
		}
	}
	return out
}

// FilterBySuit returns the cards holding the given suit.
func FilterBySuit(cards []Card, suit Suit) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// RemoveBySuit returns the cards not holding the given suit.
func RemoveBySuit(cards []Card, suit Suit) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit != suit {
			out = append(out, c)
		}
	}
	return out
}

// RemoveCards returns cards minus every card present in toRemove.
func RemoveCards(cards, toRemove []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		removed := false
		for _, r := range toRemove {
			if c == r {
				removed = true
				break
			}
		}
		if !removed {
			out = append(out, c)
		}
	}
	return out
}

// ContainsCard reports whether cards holds the exact card.
func ContainsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// Weakest returns the card losing the grand-ranking comparison against the
// rest, together with whether cards was non-empty.
func Weakest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareByRank(sorted[i], sorted[j], AnnounceGrand, NoTrump) < 0
	})
	return sorted[0], true
}
