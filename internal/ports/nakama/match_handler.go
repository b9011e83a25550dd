package nakama

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"skat/internal/config"
	"skat/internal/domain"
	"skat/internal/engine"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	MatchLabelKey_OpenSeats = "open" // Key for the open seats in the match label
)

// matchLabel is the JSON label published for match listing queries.
type matchLabel struct {
	Open  int    `json:"open"`
	State string `json:"state"`
	Game  string `json:"game"`
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
// One human plays against two bot seats; the engine drives all turn timing
// internally and the match loop only relays messages and snapshots.
type MatchState struct {
	HumanID      string                      `json:"human_id"`
	Presences    map[string]runtime.Presence `json:"-"`
	Engine       *engine.Engine              `json:"-"`
	LastSnapshot []byte                      `json:"-"`
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Presences: make(map[string]runtime.Presence),
	}

	labelBytes, err := json.Marshal(matchLabel{Open: 1, State: "lobby", Game: "skat"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 5
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Single-human table: the seat is reserved for its first occupant, who may
	// reconnect at any time.
	if matchState.HumanID != "" && matchState.HumanID != presence.GetUserId() {
		return state, false, "Match full"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.HumanID == "" {
			matchState.HumanID = p.GetUserId()
			matchState.Engine = newTableEngine(p.GetUserId())
			logger.Info("MatchJoin: User %s seated with two bot opponents.", p.GetUserId())
			mh.updateLabel(matchState, dispatcher, logger)
			continue
		}

		// Reconnect: hand control back to the returning player.
		logger.Info("MatchJoin: User %s reclaimed their seat.", p.GetUserId())
		matchState.Engine.SetAutomated(p.GetUserId(), false)
	}

	mh.broadcastSnapshot(matchState, dispatcher, logger, true)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if p.GetUserId() == matchState.HumanID && matchState.Engine != nil {
			logger.Info("MatchLeave: User %s left, seat plays on automated.", p.GetUserId())
			matchState.Engine.SetAutomated(p.GetUserId(), true)
		}
	}

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, logger, msg)
		case OpPlayerAction:
			mh.handlePlayerAction(matchState, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.broadcastSnapshot(matchState, dispatcher, logger, false)

	return matchState
}

func (mh *matchHandler) handleStartGame(state *MatchState, logger runtime.Logger, msg runtime.MatchData) {
	if msg.GetUserId() != state.HumanID || state.Engine == nil {
		logger.Warn("handleStartGame: Ignoring start request from %s", msg.GetUserId())
		return
	}
	state.Engine.StartGame()
}

func (mh *matchHandler) handlePlayerAction(state *MatchState, logger runtime.Logger, msg runtime.MatchData) {
	if msg.GetUserId() != state.HumanID || state.Engine == nil {
		logger.Warn("handlePlayerAction: Ignoring action from %s", msg.GetUserId())
		return
	}

	var action engine.Action
	if err := json.Unmarshal(msg.GetData(), &action); err != nil {
		logger.Warn("handlePlayerAction: Invalid action payload from %s: %v", msg.GetUserId(), err)
		return
	}

	state.Engine.DispatchPlayerAction(action)
}

// broadcastSnapshot sends the current engine snapshot to all presences. Unless
// forced, identical consecutive snapshots are suppressed so idle ticks stay
// silent on the wire.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, force bool) {
	if state.Engine == nil {
		return
	}

	snap := state.Engine.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Error("broadcastSnapshot: Failed to marshal snapshot: %v", err)
		return
	}

	if !force && bytes.Equal(data, state.LastSnapshot) {
		return
	}
	state.LastSnapshot = data

	dispatcher.BroadcastMessage(OpSnapshot, data, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	open := 1
	if state.HumanID != "" {
		open = 0
	}

	labelBytes, err := json.Marshal(matchLabel{Open: open, State: "playing", Game: "skat"})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

// newTableEngine builds the game engine for one human seat and two bot seats.
func newTableEngine(humanID string) *engine.Engine {
	cfg := config.GetGameConfig()
	return engine.New(engine.Config{
		Seats: []domain.Seat{
			{ID: humanID},
			{ID: uuid.NewString(), Bot: true},
			{ID: uuid.NewString(), Bot: true},
		},
		TotalRounds:    cfg.TotalRounds,
		BidBotDelay:    time.Duration(cfg.BidBotDelayMs) * time.Millisecond,
		BidVisible:     time.Duration(cfg.BidVisibleMs) * time.Millisecond,
		PlayBotDelay:   time.Duration(cfg.PlayBotDelayMs) * time.Millisecond,
		PromptVisible:  time.Duration(cfg.PromptVisibleMs) * time.Millisecond,
		TrickAnimation: time.Duration(cfg.TrickAnimationMs) * time.Millisecond,
	}, nil, nil, nil)
}
