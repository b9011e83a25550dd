package domain

// RoundScores tallies each player's card points for the current round.
func RoundScores(g *Game) map[string]int {
	scores := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		scores[p.ID] = CalculateCardPoints(g, p.ID)
	}
	return scores
}

// CalculateCardPoints sums the point values of every card in every trick the
// player won. The declarer also counts the skat, except in null games.
func CalculateCardPoints(g *Game, playerID string) int {
	total := 0
	for _, trick := range g.Tricks[playerID] {
		for _, card := range trick.Cards {
			total += CardPoints[card.Rank]
		}
	}
	if playerID == g.DeclarerID() && g.Announce.Type != AnnounceNull {
		for _, card := range g.Skat {
			total += CardPoints[card.Rank]
		}
	}
	return total
}

// CountMatadors counts the consecutive jacks held from the club jack down
// (positive, "with"), or the consecutive jacks missing from the club jack down
// (negative, "without"). Null games have no matadors.
func CountMatadors(announce AnnounceType, cards []Card) int {
	if announce == AnnounceNull {
		return 0
	}
	jacks := FilterByRank(cards, Jack)
	hasClubJack := len(FilterBySuit(jacks, Clubs)) > 0

	if hasClubJack {
		count := 0
		for _, suit := range Suits {
			if len(FilterBySuit(jacks, suit)) == 0 {
				break
			}
			count++
		}
		return count
	}

	missing := 0
	for _, suit := range Suits {
		if len(FilterBySuit(jacks, suit)) > 0 {
			break
		}
		missing++
	}
	return -missing
}
