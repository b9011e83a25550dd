package domain

// Table is the trick in progress: played cards with their owner ids in play
// order, plus the round's ranking context derived from the announce.
type Table struct {
	Cards     []Card
	Owners    []string
	Announce  AnnounceType
	TrumpSuit Suit
}

// NewTable returns an empty table with the default trump suit.
func NewTable() *Table {
	return &Table{TrumpSuit: Clubs}
}

// Clear drops the played cards after a trick resolves. The ranking context
// stays for the rest of the round.
func (t *Table) Clear() {
	t.Cards = nil
	t.Owners = nil
}

// SetTrumpFromAnnounce derives the trump suit for the round. Grand and null
// keep the default suit; null ranking ignores it entirely.
func (t *Table) SetTrumpFromAnnounce(announce AnnounceType) {
	t.Announce = announce
	switch announce {
	case AnnounceDiamonds:
		t.TrumpSuit = Diamonds
	case AnnounceHearts:
		t.TrumpSuit = Hearts
	case AnnounceSpades:
		t.TrumpSuit = Spades
	default:
		t.TrumpSuit = Clubs
	}
}

// AddCard places a card on the table for the given owner.
func (t *Table) AddCard(playerID string, card Card) {
	t.Cards = append(t.Cards, card)
	t.Owners = append(t.Owners, playerID)
}

// LeadCard returns the first card of the trick, if any.
func (t *Table) LeadCard() (Card, bool) {
	if len(t.Cards) == 0 {
		return Card{}, false
	}
	return t.Cards[0], true
}

// BestCardOwner returns the id owning the highest-ranking card on the table.
// The first card wins ties; later cards replace it only on strict improvement.
func (t *Table) BestCardOwner() string {
	if len(t.Cards) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(t.Cards); i++ {
		if CompareByRank(t.Cards[i], t.Cards[best], t.Announce, t.TrumpSuit) > 0 {
			best = i
		}
	}
	return t.Owners[best]
}
