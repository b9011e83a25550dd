package engine

import "skat/internal/domain"

// shouldTakeSkatController lets the declarer decide whether to pick up the two
// skat cards before announcing.
type shouldTakeSkatController struct {
	e *Engine
}

func (c *shouldTakeSkatController) start() {
	g := c.e.game
	g.SetCurrentPlayerByID(g.DeclarerID())
	player := g.CurrentPlayer()
	if player.Bot {
		c.playerMove(c.e.brain.SuggestTakeSkat(g))
		return
	}
	c.e.requestAction(&Prompt{
		Kind: PromptShouldTakeSkat,
		Text: "Take the skat?",
		Options: []PromptOption{
			{Label: "Yes", Action: Action{Type: ActionShouldTakeSkat, Take: true}},
			{Label: "No", Action: Action{Type: ActionShouldTakeSkat, Take: false}},
		},
	})
}

func (c *shouldTakeSkatController) onPlayerAction(a Action) {
	if a.Type != ActionShouldTakeSkat {
		return
	}
	if c.e.game.CurrentPlayer().Bot {
		return
	}
	c.playerMove(a.Take)
}

func (c *shouldTakeSkatController) playerMove(take bool) {
	g := c.e.game
	if !take {
		c.e.transition(StateAnnounce)
		return
	}
	player := g.CurrentPlayer()
	for _, card := range g.Skat {
		player.PutCard(card)
	}
	g.Skat = nil
	c.e.transition(StateSkatTake)
}

func (c *shouldTakeSkatController) destroy() {}

// skatTakeController has the declarer return exactly two cards to the skat.
// The toggle/confirm selection flow lives on the engine; this controller only
// receives the resolved discard.
type skatTakeController struct {
	e *Engine
}

func (c *skatTakeController) start() {
	g := c.e.game
	player := g.CurrentPlayer()
	if player.Bot {
		c.playerMove(c.e.brain.SuggestDiscard(g))
		return
	}
	c.e.requestAction(&Prompt{
		Kind:    PromptSkatDiscard,
		Text:    "Choose two cards for the skat",
		Subtext: "Select exactly two cards, then confirm",
		Options: []PromptOption{
			{Label: "Confirm", Action: Action{Type: ActionConfirmSkatDiscard}, Disabled: true},
		},
	})
}

func (c *skatTakeController) onPlayerAction(a Action) {
	if a.Type != ActionSkatDiscard || len(a.Cards) != domain.SkatSize {
		return
	}
	player := c.e.game.CurrentPlayer()
	for _, card := range a.Cards {
		if !player.HoldsCard(card) {
			return
		}
	}
	if a.Cards[0] == a.Cards[1] {
		return
	}
	c.playerMove(a.Cards)
}

func (c *skatTakeController) playerMove(cards []domain.Card) {
	g := c.e.game
	player := g.CurrentPlayer()
	for _, card := range cards {
		player.RemoveCard(card)
	}
	g.Skat = cards
	c.e.transition(StateAnnounce)
}

func (c *skatTakeController) destroy() {}
