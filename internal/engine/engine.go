package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"skat/internal/bot"
	"skat/internal/domain"
)

// State names one of the eleven controller phases.
type State string

const (
	StateGameInit       State = "GAME_INIT"
	StateRoundStart     State = "ROUND_START"
	StateDeal           State = "DEAL"
	StateBid            State = "BID"
	StateShouldTakeSkat State = "SHOULD_TAKE_SKAT"
	StateSkatTake       State = "SKAT_TAKE"
	StateAnnounce       State = "ANNOUNCE"
	StateCardPlay       State = "CARD_PLAY"
	StateTakeTrick      State = "TAKE_TRICK"
	StateRoundEnd       State = "ROUND_END"
	StateGameEnd        State = "GAME_END"
)

// historyLimit bounds the bid/play history ring buffers.
const historyLimit = 8

// Listener receives a snapshot synchronously on subscribe and after every
// state mutation. Listeners must not call back into the engine.
type Listener func(Snapshot)

// Config carries the per-table setup and timer pacing.
type Config struct {
	Seats          []domain.Seat
	TotalRounds    int
	BidBotDelay    time.Duration
	BidVisible     time.Duration
	PlayBotDelay   time.Duration
	PromptVisible  time.Duration
	TrickAnimation time.Duration
}

func (c Config) withDefaults() Config {
	if c.TotalRounds == 0 {
		c.TotalRounds = domain.TotalRounds
	}
	if c.BidBotDelay == 0 {
		c.BidBotDelay = 900 * time.Millisecond
	}
	if c.BidVisible == 0 {
		c.BidVisible = 900 * time.Millisecond
	}
	if c.PlayBotDelay == 0 {
		c.PlayBotDelay = 600 * time.Millisecond
	}
	if c.PromptVisible == 0 {
		c.PromptVisible = 1200 * time.Millisecond
	}
	if c.TrickAnimation == 0 {
		c.TrickAnimation = 1100 * time.Millisecond
	}
	return c
}

// Engine owns the game aggregate and the active phase controller. All state is
// mutated by the active controller and by DispatchPlayerAction; after any
// mutation an immutable snapshot is broadcast to every subscriber.
//
// Exactly one controller is live at any instant: the outgoing controller is
// destroyed (cancelling its timers) before the incoming one starts, and every
// scheduled callback carries the generation of its controller so a stale timer
// can never mutate state after its phase has ended.
type Engine struct {
	mu    sync.Mutex
	log   *zap.Logger
	cfg   Config
	sched Scheduler
	rng   *rand.Rand
	brain bot.Brain

	game  *domain.Game
	state State
	ctrl  controller
	gen   uint64

	prompt        *Prompt
	playable      []domain.Card
	skatSelection []domain.Card
	bidHistory    []string
	playHistory   []string
	lastPlay      *PlayEvent
	lastWinnerID  string
	trickAnim     *TrickAnimation

	subs    map[int]Listener
	nextSub int
}

// New builds an engine for the configured seats. A nil scheduler falls back to
// the wall clock, a nil rng to a time-seeded source and a nil logger to a nop.
func New(cfg Config, sched Scheduler, rng *rand.Rand, log *zap.Logger) *Engine {
	cfg = cfg.withDefaults()
	if sched == nil {
		sched = NewScheduler()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		log:   log,
		cfg:   cfg,
		sched: sched,
		rng:   rng,
		brain: bot.New(),
		game:  domain.NewGame(cfg.Seats, rng),
		state: StateGameInit,
		subs:  make(map[int]Listener),
	}
}

// StartGame enters the state machine at GAME_INIT.
func (e *Engine) StartGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Info("game starting", zap.Int("seats", len(e.cfg.Seats)))
	e.transition(StateGameInit)
}

// Restart discards and reconstructs the game aggregate, then re-enters
// GAME_INIT.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.restart()
}

func (e *Engine) restart() {
	e.log.Info("game restarting")
	e.game = domain.NewGame(e.cfg.Seats, e.rng)
	e.skatSelection = nil
	e.bidHistory = nil
	e.playHistory = nil
	e.lastPlay = nil
	e.lastWinnerID = ""
	e.trickAnim = nil
	e.playable = nil
	e.transition(StateGameInit)
}

// Subscribe registers a listener and delivers the current snapshot to it
// synchronously. The returned function unsubscribes.
func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = l
	l(e.snapshot())
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Snapshot returns the current immutable render state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// SetAutomated flips a seat's automation flag. When the seat was waiting on
// human input the current phase is re-entered so the automated path takes
// over.
func (e *Engine) SetAutomated(playerID string, automated bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	player := e.game.PlayerByID(playerID)
	if player == nil || player.Bot == automated {
		return
	}
	player.Bot = automated
	e.log.Info("seat automation changed", zap.String("player", playerID), zap.Bool("automated", automated))
	if e.ctrl != nil {
		e.transition(e.state)
	}
}

// DispatchPlayerAction is the single entry point for user-driven transitions.
// Actions that are malformed, out of turn, or reference an illegal card or
// selection count are discarded with no state change; the snapshot is simply
// re-emitted unchanged.
func (e *Engine) DispatchPlayerAction(a Action) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ctrl == nil {
		return
	}

	if e.state == StateSkatTake && a.Type == ActionToggleSkatCard {
		if a.Card != nil {
			e.toggleSkatCard(*a.Card)
			return
		}
		e.emit()
		return
	}
	if e.state == StateSkatTake && a.Type == ActionConfirmSkatDiscard {
		if len(e.skatSelection) == domain.SkatSize {
			cards := make([]domain.Card, len(e.skatSelection))
			copy(cards, e.skatSelection)
			e.ctrl.onPlayerAction(Action{Type: ActionSkatDiscard, Cards: cards})
		} else {
			e.log.Debug("skat discard rejected", zap.Int("selected", len(e.skatSelection)))
		}
		e.emit()
		return
	}

	e.ctrl.onPlayerAction(a)
	e.emit()
}

// transition destroys the active controller, constructs the controller for
// next and starts it. An unrecognized state is a code defect and panics.
func (e *Engine) transition(next State) {
	if e.ctrl != nil {
		e.ctrl.destroy()
	}
	e.gen++
	e.prompt = nil
	e.state = next

	switch next {
	case StateGameInit:
		e.ctrl = &gameInitController{e: e}
	case StateRoundStart:
		e.ctrl = &roundStartController{e: e}
	case StateDeal:
		e.ctrl = &dealController{e: e}
	case StateBid:
		e.ctrl = &bidController{e: e}
	case StateShouldTakeSkat:
		e.ctrl = &shouldTakeSkatController{e: e}
	case StateSkatTake:
		e.skatSelection = nil
		e.ctrl = &skatTakeController{e: e}
	case StateAnnounce:
		e.ctrl = &announceController{e: e}
	case StateCardPlay:
		e.ctrl = &cardPlayController{e: e}
	case StateTakeTrick:
		e.ctrl = &takeTrickController{e: e}
	case StateRoundEnd:
		e.ctrl = &roundEndController{e: e}
	case StateGameEnd:
		e.ctrl = &gameEndController{e: e}
	default:
		panic(fmt.Sprintf("unsupported state %q", next))
	}

	e.log.Debug("state transition", zap.String("state", string(next)), zap.Int("round", e.game.Round))
	e.ctrl.start()
	e.emit()
}

// schedule registers a delayed callback bound to the current controller
// generation. A callback whose controller has since been destroyed is a no-op
// even if it already fired.
func (e *Engine) schedule(d time.Duration, fn func()) Timer {
	gen := e.gen
	return e.sched.AfterFunc(d, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.gen != gen {
			return
		}
		fn()
	})
}

func (e *Engine) requestAction(p *Prompt) {
	e.prompt = p
	e.emit()
}

func (e *Engine) clearPrompt() {
	if e.prompt == nil {
		return
	}
	e.prompt = nil
	e.emit()
}

func (e *Engine) pushBidHistory(line string) {
	e.bidHistory = append(e.bidHistory, line)
	if len(e.bidHistory) > historyLimit {
		e.bidHistory = e.bidHistory[1:]
	}
	e.emit()
}

func (e *Engine) pushPlayHistory(line string) {
	e.playHistory = append(e.playHistory, line)
	if len(e.playHistory) > historyLimit {
		e.playHistory = e.playHistory[1:]
	}
	e.emit()
}

func (e *Engine) clearBidHistory() {
	e.bidHistory = nil
	e.emit()
}

func (e *Engine) clearPlayHistory() {
	e.playHistory = nil
	e.emit()
}

func (e *Engine) pushPlayEvent(playerID string, card domain.Card) {
	e.lastPlay = &PlayEvent{PlayerID: playerID, Card: card, At: e.sched.Now()}
	e.emit()
}

func (e *Engine) setTrickAnimation(winnerID string, cards []domain.Card, owners []string, d time.Duration) {
	e.lastWinnerID = winnerID
	e.trickAnim = &TrickAnimation{
		WinnerID:  winnerID,
		Cards:     cards,
		Owners:    owners,
		StartedAt: e.sched.Now(),
		Duration:  d,
	}
	e.emit()
}

func (e *Engine) clearTrickAnimation() {
	e.trickAnim = nil
	e.emit()
}

// toggleSkatCard adds or removes a held card from the in-progress discard
// selection, capped at the skat size.
func (e *Engine) toggleSkatCard(card domain.Card) {
	if !e.game.CurrentPlayer().HoldsCard(card) {
		e.emit()
		return
	}
	for i, c := range e.skatSelection {
		if c == card {
			e.skatSelection = append(e.skatSelection[:i], e.skatSelection[i+1:]...)
			e.updateSkatPrompt()
			e.emit()
			return
		}
	}
	if len(e.skatSelection) < domain.SkatSize {
		e.skatSelection = append(e.skatSelection, card)
	}
	e.updateSkatPrompt()
	e.emit()
}

// updateSkatPrompt enables the confirm option exactly when two cards are
// selected.
func (e *Engine) updateSkatPrompt() {
	if e.prompt == nil || e.prompt.Kind != PromptSkatDiscard {
		return
	}
	for i := range e.prompt.Options {
		if e.prompt.Options[i].Action.Type == ActionConfirmSkatDiscard {
			e.prompt.Options[i].Disabled = len(e.skatSelection) != domain.SkatSize
		}
	}
}

func (e *Engine) emit() {
	snap := e.snapshot()
	for _, l := range e.subs {
		l(snap)
	}
}

func (e *Engine) snapshot() Snapshot {
	g := e.game
	players := make([]PlayerView, 0, len(g.Players))
	trickCounts := make(map[string]int, len(g.Players))
	scores := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		hand := make([]domain.Card, len(p.Hand))
		copy(hand, p.Hand)
		players = append(players, PlayerView{ID: p.ID, Bot: p.Bot, Hand: hand})
		trickCounts[p.ID] = len(g.Tricks[p.ID])
		scores[p.ID] = g.Scores[p.ID]
	}

	return Snapshot{
		State:             e.state,
		Prompt:            clonePrompt(e.prompt),
		PlayableCards:     cloneCards(e.playable),
		SkatSelection:     cloneCards(e.skatSelection),
		Round:             g.Round,
		Players:           players,
		CurrentPlayerID:   g.CurrentPlayer().ID,
		DeclarerID:        g.DeclarerID(),
		Announce:          g.Announce.Type,
		BidValue:          g.Bid.Value,
		TableCards:        cloneCards(g.Table.Cards),
		TableOwners:       cloneStrings(g.Table.Owners),
		Scores:            scores,
		BidHistory:        cloneStrings(e.bidHistory),
		PlayHistory:       cloneStrings(e.playHistory),
		LastPlay:          e.lastPlay,
		LastTrickWinnerID: e.lastWinnerID,
		TrickAnimation:    e.trickAnim,
		TrickCounts:       trickCounts,
	}
}

func cloneCards(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func clonePrompt(p *Prompt) *Prompt {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Options = make([]PromptOption, len(p.Options))
	copy(cp.Options, p.Options)
	return &cp
}
