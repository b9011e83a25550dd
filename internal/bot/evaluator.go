package bot

import "skat/internal/domain"

// evalSuits is the scan order for suit-based evaluations.
var evalSuits = []domain.Suit{domain.Diamonds, domain.Hearts, domain.Spades, domain.Clubs}

// strongSevenScore is the "strong seven" hand estimator: it rewards held
// jacks, aces, ace-backed tens and loose tens (capped at two), adds a forehand
// bonus, and grants one extra point for a long suit carrying both its ace and
// ten when at least three jacks are held.
func strongSevenScore(role domain.BidderRole, cards []domain.Card) int {
	jacks := domain.FilterByRank(cards, domain.Jack)
	aces := domain.FilterByRank(cards, domain.Ace)
	tens := domain.FilterByRank(cards, domain.Ten)

	var aceTens []domain.Card
	for _, ten := range tens {
		if len(domain.FilterBySuit(aces, ten.Suit)) > 0 {
			aceTens = append(aceTens, ten)
		}
	}
	looseTens := domain.RemoveCards(tens, aceTens)

	score := 0
	if len(jacks) >= 2 {
		score += len(jacks)
	}
	score += len(aces)
	score += len(aceTens)
	if len(looseTens) > 2 {
		score += 2
	} else {
		score += len(looseTens)
	}
	if role == domain.Forehand {
		score++
	}

	if len(jacks) >= 3 {
		for _, suit := range evalSuits {
			suitCards := domain.RemoveCards(domain.FilterBySuit(cards, suit), jacks)
			hasAce := len(domain.FilterByRank(suitCards, domain.Ace)) > 0
			hasTen := len(domain.FilterByRank(suitCards, domain.Ten)) > 0
			if len(suitCards) >= 4 && hasAce && hasTen {
				score++
				break
			}
		}
	}
	return score
}

// suitEvaluation is the result of the "trumps and aces" estimator.
type suitEvaluation struct {
	announce  domain.AnnounceType
	baseValue int
	value     int
}

// trumpsAndAces counts the longest non-jack suit plus all jacks plus aces
// outside that suit, and names the implied suit game.
func trumpsAndAces(cards []domain.Card) suitEvaluation {
	jacks := domain.FilterByRank(cards, domain.Jack)

	var bestSuitCards []domain.Card
	for _, suit := range evalSuits {
		suitCards := domain.RemoveCards(domain.FilterBySuit(cards, suit), jacks)
		if len(suitCards) > len(bestSuitCards) {
			bestSuitCards = suitCards
		}
	}

	announce := domain.AnnounceClubs
	if len(bestSuitCards) > 0 {
		switch bestSuitCards[0].Suit {
		case domain.Spades:
			announce = domain.AnnounceSpades
		case domain.Hearts:
			announce = domain.AnnounceHearts
		case domain.Diamonds:
			announce = domain.AnnounceDiamonds
		}
	}

	aces := domain.FilterByRank(cards, domain.Ace)
	outsideAces := domain.RemoveCards(aces, domain.FilterByRank(bestSuitCards, domain.Ace))

	return suitEvaluation{
		announce:  announce,
		baseValue: domain.AnnounceBaseValues[announce],
		value:     len(bestSuitCards) + len(jacks) + len(outsideAces),
	}
}
