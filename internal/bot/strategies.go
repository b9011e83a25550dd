package bot

import (
	"sort"

	"skat/internal/domain"
)

// bidThreshold is the estimator score below which a hand always passes.
const bidThreshold = 7

// Standard plays the straightforward heuristics: bid on strong hands, always
// take the skat, discard the cheapest cards, announce the implied game and
// play the weakest legal card. No lookahead, no opponent modeling.
type Standard struct{}

// SuggestBid passes unless either estimator reaches the threshold, then bids
// only while the implied game value still covers the asked value.
func (s *Standard) SuggestBid(g *domain.Game, offers []domain.BidOffer) domain.BidOffer {
	player := g.CurrentPlayer()
	cards := player.Hand
	seven := strongSevenScore(player.Role, cards)
	trumps := trumpsAndAces(cards)

	if len(offers) == 1 && offers[0].Kind == domain.BidPass {
		return offers[0]
	}
	if seven < bidThreshold && trumps.value < bidThreshold {
		return passOffer(offers)
	}

	grandImplied := func() int {
		matadors := domain.CountMatadors(domain.AnnounceGrand, cards)
		return domain.AnnounceBaseValues[domain.AnnounceGrand] * (abs(matadors) + int(domain.MultiplierGame))
	}
	suitImplied := func() int {
		matadors := domain.CountMatadors(trumps.announce, cards)
		return trumps.baseValue * (abs(matadors) + int(domain.MultiplierGame))
	}

	var implied int
	switch {
	case seven == trumps.value:
		if player.Role == domain.Forehand {
			implied = grandImplied()
		} else {
			implied = suitImplied()
		}
	case seven >= bidThreshold:
		implied = grandImplied()
	default:
		implied = suitImplied()
	}

	if implied > g.Bid.Value {
		return valueOffer(offers)
	}
	return passOffer(offers)
}

// SuggestTakeSkat always picks up the skat.
func (s *Standard) SuggestTakeSkat(g *domain.Game) bool {
	return true
}

// SuggestDiscard returns the two lowest point-value cards of the current hand.
func (s *Standard) SuggestDiscard(g *domain.Game) []domain.Card {
	cards := make([]domain.Card, len(g.CurrentPlayer().Hand))
	copy(cards, g.CurrentPlayer().Hand)
	sort.SliceStable(cards, func(i, j int) bool {
		return domain.CardPoints[cards[i].Rank] < domain.CardPoints[cards[j].Rank]
	})
	return []domain.Card{cards[0], cards[1]}
}

// SuggestAnnounce declares grand from forehand on a strong-seven hand and the
// implied suit game otherwise.
func (s *Standard) SuggestAnnounce(g *domain.Game) domain.AnnounceType {
	player := g.CurrentPlayer()
	seven := strongSevenScore(player.Role, player.Hand)
	trumps := trumpsAndAces(player.Hand)
	if seven == trumps.value {
		if player.Role == domain.Forehand {
			return domain.AnnounceGrand
		}
		return trumps.announce
	}
	if seven >= bidThreshold {
		return domain.AnnounceGrand
	}
	return trumps.announce
}

// SuggestCard plays the weakest legal card.
func (s *Standard) SuggestCard(g *domain.Game, playable []domain.Card) (domain.Card, bool) {
	return domain.Weakest(playable)
}

func passOffer(offers []domain.BidOffer) domain.BidOffer {
	for _, o := range offers {
		if o.Kind == domain.BidPass {
			return o
		}
	}
	return offers[0]
}

func valueOffer(offers []domain.BidOffer) domain.BidOffer {
	for _, o := range offers {
		if o.Kind != domain.BidPass {
			return o
		}
	}
	return offers[0]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
