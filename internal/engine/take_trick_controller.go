package engine

import (
	"fmt"

	"skat/internal/domain"
)

// takeTrickController publishes the trick-collection animation descriptor,
// waits out its duration, then commits the trick and hands the lead to the
// winner.
type takeTrickController struct {
	e     *Engine
	timer Timer
}

func (c *takeTrickController) start() {
	g := c.e.game
	winner, ok := g.TrickWinnerID()
	if !ok {
		// Reaching this state with an incomplete trick is a code defect.
		panic("TAKE_TRICK entered with incomplete trick")
	}
	cards := cloneCards(g.Table.Cards)
	owners := cloneStrings(g.Table.Owners)

	c.e.pushPlayHistory(fmt.Sprintf("%s takes the trick", winner))
	c.e.setTrickAnimation(winner, cards, owners, c.e.cfg.TrickAnimation)

	c.timer = c.e.schedule(c.e.cfg.TrickAnimation, func() {
		c.e.clearTrickAnimation()
		g.TakeTrick()
		g.SetCurrentPlayerByID(winner)

		if g.TrickCount() >= domain.TotalTricks {
			c.e.transition(StateRoundEnd)
			return
		}
		c.e.transition(StateCardPlay)
	})
}

func (c *takeTrickController) onPlayerAction(Action) {}

func (c *takeTrickController) destroy() {
	if c.timer != nil {
		c.timer.Stop()
	}
}
