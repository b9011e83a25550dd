package engine

import (
	"fmt"

	"skat/internal/domain"
)

// cardPlayController handles one seat's turn: legal-card computation, the bot
// delay or the human prompt with its auto-clearing turn indicator, and the
// hand-off to TAKE_TRICK once the third card lands.
type cardPlayController struct {
	e           *Engine
	promptTimer Timer
	botTimer    Timer
}

func (c *cardPlayController) start() {
	c.generateMove()
}

func (c *cardPlayController) generateMove() {
	g := c.e.game
	player := g.CurrentPlayer()

	var lead *domain.Card
	if card, ok := g.Table.LeadCard(); ok {
		lead = &card
	}
	playable := domain.PlayableCards(player.Hand, lead, g.Announce.Type, g.Table.TrumpSuit)
	c.e.playable = cloneCards(playable)

	if player.Bot {
		if c.botTimer != nil {
			c.botTimer.Stop()
		}
		c.botTimer = c.e.schedule(c.e.cfg.PlayBotDelay, func() {
			if card, ok := c.e.brain.SuggestCard(g, c.e.playable); ok {
				c.playerMove(card)
			}
		})
		return
	}

	if c.promptTimer != nil {
		c.promptTimer.Stop()
	}
	c.e.requestAction(&Prompt{
		Kind:    PromptPlayCard,
		Text:    fmt.Sprintf("%s, your turn", player.ID),
		Subtext: "Play one of the highlighted cards",
	})
	c.promptTimer = c.e.schedule(c.e.cfg.PromptVisible, func() {
		c.e.clearPrompt()
	})
}

func (c *cardPlayController) onPlayerAction(a Action) {
	if a.Type != ActionPlayCard || a.Card == nil {
		return
	}
	if c.e.game.CurrentPlayer().Bot {
		return
	}
	if !domain.ContainsCard(c.e.playable, *a.Card) {
		return
	}
	if c.promptTimer != nil {
		c.promptTimer.Stop()
	}
	c.playerMove(*a.Card)
}

func (c *cardPlayController) playerMove(card domain.Card) {
	g := c.e.game
	player := g.CurrentPlayer()
	c.e.prompt = nil
	c.e.pushPlayEvent(player.ID, card)
	c.e.pushPlayHistory(fmt.Sprintf("%s plays %s", player.ID, card))
	g.ApplyCardMove(card)

	if _, complete := g.TrickWinnerID(); complete {
		c.e.transition(StateTakeTrick)
		return
	}
	g.AdvancePlayer()
	c.e.transition(StateCardPlay)
}

func (c *cardPlayController) destroy() {
	if c.promptTimer != nil {
		c.promptTimer.Stop()
	}
	if c.botTimer != nil {
		c.botTimer.Stop()
	}
}
