package bot

import "skat/internal/domain"

// Brain is the decision interface for an automated seat. Every method is
// consulted with the full game state and must return a legal choice; the
// engine never re-validates a brain's output against a wider option set than
// the one it passed in.
type Brain interface {
	// SuggestBid picks one of the offered auction decisions.
	SuggestBid(g *domain.Game, offers []domain.BidOffer) domain.BidOffer
	// SuggestTakeSkat decides whether the declarer picks up the skat.
	SuggestTakeSkat(g *domain.Game) bool
	// SuggestDiscard picks the two cards to return to the skat.
	SuggestDiscard(g *domain.Game) []domain.Card
	// SuggestAnnounce picks the game type to declare.
	SuggestAnnounce(g *domain.Game) domain.AnnounceType
	// SuggestCard picks one of the legal cards to play.
	SuggestCard(g *domain.Game, playable []domain.Card) (domain.Card, bool)
}

// New returns the standard heuristic brain.
func New() Brain {
	return &Standard{}
}
