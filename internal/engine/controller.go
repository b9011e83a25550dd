package engine

// controller owns the turn-taking logic and timers for one phase. The engine
// holds exactly one live controller; destroy always runs before the next
// controller's start.
type controller interface {
	start()
	onPlayerAction(Action)
	destroy()
}

type gameInitController struct {
	e *Engine
}

func (c *gameInitController) start() {
	c.e.transition(StateRoundStart)
}

func (c *gameInitController) onPlayerAction(Action) {}
func (c *gameInitController) destroy()              {}

type roundStartController struct {
	e *Engine
}

func (c *roundStartController) start() {
	if c.e.game.Round > c.e.cfg.TotalRounds {
		c.e.transition(StateGameEnd)
		return
	}
	c.e.clearBidHistory()
	c.e.clearPlayHistory()
	c.e.game.ResetRoundData()
	c.e.transition(StateDeal)
}

func (c *roundStartController) onPlayerAction(Action) {}
func (c *roundStartController) destroy()              {}

type dealController struct {
	e *Engine
}

func (c *dealController) start() {
	c.e.game.Deal()
	c.e.transition(StateBid)
}

func (c *dealController) onPlayerAction(Action) {}
func (c *dealController) destroy()              {}

type roundEndController struct {
	e *Engine
}

func (c *roundEndController) start() {
	c.e.game.FinishRound()
	c.e.transition(StateRoundStart)
}

func (c *roundEndController) onPlayerAction(Action) {}
func (c *roundEndController) destroy()              {}
