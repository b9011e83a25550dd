package domain

// Game totals. Keep these centralized so tests and local runs can adjust a rule
// without touching multiple call sites.
const (
	MaxPlayers    = 3
	CardsPerHand  = 10
	SkatSize      = 2
	CardsPerTrick = 3
	TotalTricks   = 10
	TotalRounds   = 3

	// Contract thresholds from the official rules. Round scoring only tallies
	// raw card points; these are kept for parity with the rulebook.
	MinPointsToWin     = 61
	MinPointsSchneider = 90
	TotalCardPoints    = 120
)

// AllBidValues is the monotonically increasing ladder of legal bid values.
var AllBidValues = []int{
	18, 20, 22, 23, 24, 27, 30, 33, 35, 36, 40, 44, 45, 46, 48, 50, 54,
	55, 59, 60, 63, 66, 70, 72, 77, 80, 81, 84, 88, 90, 96, 99, 100, 108,
	110, 117, 120, 121, 126, 130, 132, 135, 140, 143, 144, 150, 153, 154,
	156, 160, 162, 165, 168, 170, 176, 180, 187, 192, 198, 204, 216, 240, 264,
}

// NextBidValue returns the ladder value directly above current, or 0 when the
// ladder is exhausted. A current value of 0 yields the lowest bid.
func NextBidValue(current int) int {
	if current == 0 {
		return AllBidValues[0]
	}
	for i, v := range AllBidValues {
		if v == current {
			if i+1 < len(AllBidValues) {
				return AllBidValues[i+1]
			}
			return 0
		}
	}
	return 0
}

// CardPoints maps ranks to their scoring value.
var CardPoints = map[Rank]int{
	Ace:   11,
	Ten:   10,
	King:  4,
	Queen: 3,
	Jack:  2,
	Nine:  0,
	Eight: 0,
	Seven: 0,
}

// nullRankPriority orders ranks for null games; lower is stronger.
var nullRankPriority = map[Rank]int{
	Ace:   0,
	King:  1,
	Queen: 2,
	Jack:  3,
	Ten:   4,
	Nine:  5,
	Eight: 6,
	Seven: 7,
}

// trumpRankPriority orders non-jack ranks for trump games; lower is stronger.
// Note the ace outranks the ten here, unlike the point table ordering.
var trumpRankPriority = map[Rank]int{
	Ace:   0,
	Ten:   1,
	King:  2,
	Queen: 3,
	Nine:  4,
	Eight: 5,
	Seven: 6,
}

// jackSuitPriority orders the four jacks; lower is stronger.
var jackSuitPriority = map[Suit]int{
	Clubs:    10,
	Spades:   20,
	Hearts:   30,
	Diamonds: 40,
}
