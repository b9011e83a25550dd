package domain

// BidderRole is a seat's bidding-order role, recomputed every round from the
// dealer position.
type BidderRole string

const (
	Forehand   BidderRole = "forehand"
	Middlehand BidderRole = "middlehand"
	Rearhand   BidderRole = "rearhand"
)

// Player holds per-seat state. Identity persists across rounds; only the hand
// and role are reset.
type Player struct {
	ID     string
	TeamID string
	Bot    bool
	Active bool
	Kicked bool
	Role   BidderRole
	Hand   []Card
}

// NewPlayer returns an active player with an empty hand.
func NewPlayer(id, teamID string, bot bool) *Player {
	return &Player{
		ID:     id,
		TeamID: teamID,
		Bot:    bot,
		Active: true,
	}
}

// ResetHand drops all held cards at the start of a round.
func (p *Player) ResetHand() {
	p.Hand = nil
}

// PutCard adds a card to the hand.
func (p *Player) PutCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes the exact card from the hand, if held.
func (p *Player) RemoveCard(card Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// HoldsCard reports whether the hand contains the exact card.
func (p *Player) HoldsCard(card Card) bool {
	return ContainsCard(p.Hand, card)
}
