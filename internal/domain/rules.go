package domain

// PlayableCards computes the legal subset of hand given the card leading the
// trick (nil when leading), the announce and the trump suit.
//
// Leading allows any card. Null games only require following the led suit.
// Trump games treat jacks as trump-suit members: a led jack forces trump cards
// and jacks, a led trump suit admits held jacks as followers, and a led plain
// suit excludes jacks from the follow set. Whenever the computed subset is
// empty the whole hand becomes legal; that final fallback keeps the result
// non-empty for every non-empty hand.
func PlayableCards(hand []Card, lead *Card, announce AnnounceType, trump Suit) []Card {
	if lead == nil {
		return hand
	}

	if announce == AnnounceNull {
		follow := FilterBySuit(hand, lead.Suit)
		if len(follow) > 0 {
			return follow
		}
		return hand
	}

	var playable []Card
	if lead.Rank == Jack {
		playable = append(FilterBySuit(hand, trump), FilterByRank(RemoveBySuit(hand, trump), Jack)...)
	} else {
		playable = FilterBySuit(hand, lead.Suit)
		if lead.Suit == trump {
			playable = append(playable, FilterByRank(RemoveBySuit(hand, lead.Suit), Jack)...)
		} else {
			playable = RemoveCards(playable, FilterByRank(hand, Jack))
		}
	}
	if len(playable) > 0 {
		return playable
	}
	return hand
}
