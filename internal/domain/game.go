package domain

import (
	"fmt"
	"math/rand"
)

// Seat describes one of the three seats when constructing a game.
type Seat struct {
	ID  string
	Bot bool
}

// Trick is one resolved exchange of three cards, recorded for the winner.
type Trick struct {
	Cards []Card
}

// Game is the aggregate root for a whole sitting: players, per-round deck,
// auction, announce and table, plus cumulative scores and role rotation.
type Game struct {
	Players  []*Player
	Deck     *Deck
	Bid      *Bid
	Announce *Announce
	Table    *Table

	Skat   []Card
	Tricks map[string][]Trick
	Scores map[string]int

	Round         int
	DealerIndex   int
	DeclarerIndex int
	CurrentIndex  int

	rng *rand.Rand
}

// NewGame builds a game for exactly three seats, picks a random dealer and
// initializes the first round's data.
func NewGame(seats []Seat, rng *rand.Rand) *Game {
	if len(seats) != MaxPlayers {
		panic(fmt.Sprintf("game requires %d seats, got %d", MaxPlayers, len(seats)))
	}
	g := &Game{
		Players: make([]*Player, 0, MaxPlayers),
		Tricks:  make(map[string][]Trick, MaxPlayers),
		Scores:  make(map[string]int, MaxPlayers),
		Round:   1,
		rng:     rng,
	}
	for i, seat := range seats {
		g.Players = append(g.Players, NewPlayer(seat.ID, fmt.Sprintf("team%d", i+1), seat.Bot))
		g.Scores[seat.ID] = 0
	}
	g.DealerIndex = rng.Intn(MaxPlayers)
	g.SetRoles(g.DealerIndex)
	g.ResetRoundData()
	return g
}

// ResetRoundData recreates the per-round objects: deck, auction, announce,
// table, skat, trick histories and hands. Player identity and scores persist.
func (g *Game) ResetRoundData() {
	g.Deck = NewDeck()
	g.Deck.Shuffle(g.rng)
	g.Bid = NewBid()
	g.Announce = NewAnnounce()
	g.Table = NewTable()
	g.Skat = nil
	g.DeclarerIndex = -1
	g.CurrentIndex = g.NextIdx(g.DealerIndex)
	for _, p := range g.Players {
		p.ResetHand()
		g.Tricks[p.ID] = nil
	}
}

// SetRoles assigns forehand/middlehand/rearhand from the dealer position.
func (g *Game) SetRoles(dealerIndex int) {
	forehand := g.NextIdx(dealerIndex)
	middlehand := g.NextIdx(forehand)
	g.Players[forehand].Role = Forehand
	g.Players[middlehand].Role = Middlehand
	g.Players[dealerIndex].Role = Rearhand
}

// NextIdx returns the seat index after idx, wrapping around the table.
func (g *Game) NextIdx(idx int) int {
	return (idx + 1) % len(g.Players)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentIndex]
}

// AdvancePlayer moves the turn to the next seat.
func (g *Game) AdvancePlayer() {
	g.CurrentIndex = g.NextIdx(g.CurrentIndex)
}

// SetCurrentPlayerByID moves the turn to the seat holding the given id.
func (g *Game) SetCurrentPlayerByID(id string) {
	for i, p := range g.Players {
		if p.ID == id {
			g.CurrentIndex = i
			return
		}
	}
}

// PlayerByID looks a player up by id, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DeclarerID returns the declarer's id, or "" before the auction resolves.
func (g *Game) DeclarerID() string {
	if g.DeclarerIndex < 0 {
		return ""
	}
	return g.Players[g.DeclarerIndex].ID
}

// Deal distributes ten cards to each seat starting after the dealer, then two
// cards to the skat, draining the deck completely.
func (g *Game) Deal() {
	start := g.NextIdx(g.DealerIndex)
	for i := 0; i < MaxPlayers; i++ {
		player := g.Players[(start+i)%MaxPlayers]
		for k := 0; k < CardsPerHand; k++ {
			player.PutCard(g.Deck.Draw())
		}
	}
	g.Skat = []Card{g.Deck.Draw(), g.Deck.Draw()}
}

// ApplyBid records the current player's auction decision.
func (g *Game) ApplyBid(offer BidOffer) {
	g.Bid.Apply(g.CurrentPlayer().ID, offer)
}

// FinalizeDeclarer resolves the auction: the top value bidder becomes the
// declarer, or nobody when every seat passed.
func (g *Game) FinalizeDeclarer() {
	g.DeclarerIndex = -1
	if g.Bid.TopBidderID == "" {
		return
	}
	for i, p := range g.Players {
		if p.ID == g.Bid.TopBidderID {
			g.DeclarerIndex = i
			return
		}
	}
}

// ApplyCardMove moves a card from the current player's hand onto the table.
func (g *Game) ApplyCardMove(card Card) {
	player := g.CurrentPlayer()
	player.RemoveCard(card)
	g.Table.AddCard(player.ID, card)
}

// TrickWinnerID returns the winner of the trick in progress, but only once all
// three cards are on the table.
func (g *Game) TrickWinnerID() (string, bool) {
	if len(g.Table.Cards) != CardsPerTrick {
		return "", false
	}
	return g.Table.BestCardOwner(), true
}

// TakeTrick commits the completed trick to the winner's history and clears the
// table.
func (g *Game) TakeTrick() {
	winner, ok := g.TrickWinnerID()
	if !ok {
		return
	}
	cards := make([]Card, len(g.Table.Cards))
	copy(cards, g.Table.Cards)
	g.Tricks[winner] = append(g.Tricks[winner], Trick{Cards: cards})
	g.Table.Clear()
}

// TrickCount returns the number of resolved tricks this round.
func (g *Game) TrickCount() int {
	n := 0
	for _, tricks := range g.Tricks {
		n += len(tricks)
	}
	return n
}

// FinishRound adds the round's card points to the cumulative scores, advances
// the dealer seat and recomputes the bidding roles.
func (g *Game) FinishRound() {
	for id, points := range RoundScores(g) {
		g.Scores[id] += points
	}
	g.Round++
	g.DealerIndex = g.NextIdx(g.DealerIndex)
	g.SetRoles(g.DealerIndex)
}
