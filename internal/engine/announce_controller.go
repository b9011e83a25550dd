package engine

import "skat/internal/domain"

var announceLabels = map[domain.AnnounceType]string{
	domain.AnnounceClubs:    "Clubs",
	domain.AnnounceSpades:   "Spades",
	domain.AnnounceHearts:   "Hearts",
	domain.AnnounceDiamonds: "Diamonds",
	domain.AnnounceGrand:    "Grand",
	domain.AnnounceNull:     "Null",
}

// announceController has the declarer pick the game type; the trump suit is
// derived onto the table and play starts with the seat after the dealer.
type announceController struct {
	e *Engine
}

func (c *announceController) start() {
	g := c.e.game
	g.SetCurrentPlayerByID(g.DeclarerID())
	player := g.CurrentPlayer()
	if player.Bot {
		c.playerMove(c.e.brain.SuggestAnnounce(g))
		return
	}

	announces := domain.AvailableAnnounces()
	options := make([]PromptOption, 0, len(announces))
	for _, announce := range announces {
		options = append(options, PromptOption{
			Label:  announceLabels[announce],
			Action: Action{Type: ActionAnnounce, Announce: announce},
		})
	}
	c.e.requestAction(&Prompt{Kind: PromptAnnounce, Text: "Announce your game", Options: options})
}

func (c *announceController) onPlayerAction(a Action) {
	if a.Type != ActionAnnounce {
		return
	}
	if c.e.game.CurrentPlayer().Bot {
		return
	}
	if _, ok := announceLabels[a.Announce]; !ok {
		return
	}
	c.playerMove(a.Announce)
}

func (c *announceController) playerMove(announce domain.AnnounceType) {
	g := c.e.game
	g.Announce.Set(announce)
	g.Table.SetTrumpFromAnnounce(announce)
	g.CurrentIndex = g.NextIdx(g.DealerIndex)
	c.e.transition(StateCardPlay)
}

func (c *announceController) destroy() {}
