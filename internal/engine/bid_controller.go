package engine

import (
	"fmt"

	"skat/internal/domain"
)

// bidController runs the auction. Each active seat in turn is offered a pass
// or the next ladder value; passing removes the seat from the active set.
// Bidding ends when at most one seat remains active or two passes are on
// record, resolving to a declarer or to a thrown-in round.
//
// The active set and turn position are rebuilt from the recorded auction on
// start, so re-entering the phase resumes where the auction left off.
type bidController struct {
	e             *Engine
	activeBidders []string
	waiting       bool
	timer         Timer
}

func (c *bidController) start() {
	g := c.e.game
	c.activeBidders = c.activeBidders[:0]
	for _, p := range g.Players {
		if !g.Bid.HasPassed(p.ID) {
			c.activeBidders = append(c.activeBidders, p.ID)
		}
	}
	if !g.Bid.Started() {
		g.CurrentIndex = g.NextIdx(g.DealerIndex)
	}
	if g.Bid.Finished() || len(c.activeBidders) <= 1 {
		c.resolve()
		return
	}
	if g.CurrentPlayer().ID == g.Bid.TopBidderID {
		// The current seat's bid is already on record; the answer is due
		// from the next active seat.
		g.AdvancePlayer()
	}
	c.generateMove()
}

// offers builds the current choices: pass, plus the next ladder value while
// the ladder is not exhausted.
func (c *bidController) offers() []domain.BidOffer {
	out := []domain.BidOffer{{Kind: domain.BidPass}}
	if next := domain.NextBidValue(c.e.game.Bid.Value); next != 0 {
		out = append(out, domain.BidOffer{Kind: domain.BidValue, Value: next})
	}
	return out
}

func (c *bidController) generateMove() {
	g := c.e.game
	player := g.CurrentPlayer()
	if !c.isActive(player.ID) {
		g.AdvancePlayer()
		c.generateMove()
		return
	}
	c.waiting = false

	offers := c.offers()
	if player.Bot {
		offer := c.e.brain.SuggestBid(g, offers)
		c.stopTimer()
		c.timer = c.e.schedule(c.e.cfg.BidBotDelay, func() {
			c.playerMove(offer)
		})
		return
	}

	text := fmt.Sprintf("%s starts the bidding", player.ID)
	if g.Bid.Value > 0 {
		text = fmt.Sprintf("%s, do you hold %d?", player.ID, g.Bid.Value)
	}
	options := make([]PromptOption, 0, len(offers))
	for _, offer := range offers {
		offer := offer
		label := "Pass"
		if offer.Kind == domain.BidValue {
			label = fmt.Sprintf("Bid %d", offer.Value)
		}
		options = append(options, PromptOption{
			Label:  label,
			Action: Action{Type: ActionBid, Bid: &offer},
		})
	}
	c.e.requestAction(&Prompt{Kind: PromptBid, Text: text, Options: options})
}

func (c *bidController) onPlayerAction(a Action) {
	if a.Type != ActionBid || a.Bid == nil {
		return
	}
	if c.waiting {
		return
	}
	g := c.e.game
	if g.CurrentPlayer().Bot {
		return
	}
	offer := *a.Bid
	if offer.Kind == domain.BidValue && offer.Value != domain.NextBidValue(g.Bid.Value) {
		return
	}
	if offer.Kind != domain.BidValue && offer.Kind != domain.BidPass {
		return
	}
	c.playerMove(offer)
}

func (c *bidController) playerMove(offer domain.BidOffer) {
	g := c.e.game
	player := g.CurrentPlayer()
	c.e.prompt = nil
	c.waiting = true
	g.ApplyBid(offer)

	if offer.Kind == domain.BidPass {
		c.e.pushBidHistory(fmt.Sprintf("%s passes", player.ID))
		c.removeBidder(player.ID)
	} else {
		c.e.pushBidHistory(fmt.Sprintf("%s says %d", player.ID, offer.Value))
	}

	c.stopTimer()
	c.timer = c.e.schedule(c.e.cfg.BidVisible, func() {
		if len(c.activeBidders) <= 1 || g.Bid.Finished() {
			c.resolve()
			return
		}
		g.AdvancePlayer()
		c.generateMove()
	})
}

// resolve closes the auction, either seating the declarer or throwing the
// round in when nobody bid.
func (c *bidController) resolve() {
	g := c.e.game
	g.FinalizeDeclarer()
	if g.DeclarerID() == "" {
		c.e.pushBidHistory("nobody bids, round is thrown in")
		c.e.transition(StateRoundEnd)
		return
	}
	c.e.transition(StateShouldTakeSkat)
}

func (c *bidController) isActive(id string) bool {
	for _, b := range c.activeBidders {
		if b == id {
			return true
		}
	}
	return false
}

func (c *bidController) removeBidder(id string) {
	for i, b := range c.activeBidders {
		if b == id {
			c.activeBidders = append(c.activeBidders[:i], c.activeBidders[i+1:]...)
			return
		}
	}
}

func (c *bidController) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
	}
}

func (c *bidController) destroy() {
	c.stopTimer()
}
