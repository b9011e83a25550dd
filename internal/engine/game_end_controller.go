package engine

// gameEndController is terminal: it presents the summary prompt and only the
// explicit restart action leaves it.
type gameEndController struct {
	e *Engine
}

func (c *gameEndController) start() {
	c.e.requestAction(&Prompt{
		Kind:    PromptGameEnd,
		Text:    "Game over",
		Subtext: "Play again?",
		Options: []PromptOption{
			{Label: "Restart", Action: Action{Type: ActionRestart}},
		},
	})
}

func (c *gameEndController) onPlayerAction(a Action) {
	if a.Type != ActionRestart {
		return
	}
	c.e.restart()
}

func (c *gameEndController) destroy() {}
