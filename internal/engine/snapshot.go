package engine

import (
	"time"

	"skat/internal/domain"
)

// Prompt kinds rendered generically by the UI collaborator.
const (
	PromptBid            = "bid"
	PromptShouldTakeSkat = "shouldTakeSkat"
	PromptSkatDiscard    = "skatDiscard"
	PromptAnnounce       = "announce"
	PromptPlayCard       = "playCard"
	PromptGameEnd        = "gameEnd"
)

// PromptOption is one selectable choice in a prompt.
type PromptOption struct {
	Label    string `json:"label"`
	Action   Action `json:"action"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Prompt describes an action request for the UI. The UI renders prompts
// generically and must not encode game rules itself.
type Prompt struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text"`
	Subtext string         `json:"subtext,omitempty"`
	Options []PromptOption `json:"options"`
}

// PlayerView is the per-player slice of a snapshot.
type PlayerView struct {
	ID   string        `json:"id"`
	Bot  bool          `json:"bot"`
	Hand []domain.Card `json:"hand"`
}

// PlayEvent records the most recent card play.
type PlayEvent struct {
	PlayerID string      `json:"playerId"`
	Card     domain.Card `json:"card"`
	At       time.Time   `json:"at"`
}

// TrickAnimation describes an in-flight trick collection for the presentation
// layer to interpret; the engine itself has no rendering-frame concept.
type TrickAnimation struct {
	WinnerID  string        `json:"winnerId"`
	Cards     []domain.Card `json:"cards"`
	Owners    []string      `json:"owners"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Snapshot is the immutable render state broadcast to subscribers after every
// mutation. The latest snapshot is always authoritative; dropped intermediate
// snapshots have no correctness impact.
type Snapshot struct {
	State             State               `json:"state"`
	Prompt            *Prompt             `json:"prompt,omitempty"`
	PlayableCards     []domain.Card       `json:"playableCards"`
	SkatSelection     []domain.Card       `json:"skatSelection"`
	Round             int                 `json:"round"`
	Players           []PlayerView        `json:"players"`
	CurrentPlayerID   string              `json:"currentPlayerId"`
	DeclarerID        string              `json:"declarerId,omitempty"`
	Announce          domain.AnnounceType `json:"announce,omitempty"`
	BidValue          int                 `json:"bidValue"`
	TableCards        []domain.Card       `json:"tableCards"`
	TableOwners       []string            `json:"tableOwners"`
	Scores            map[string]int      `json:"scores"`
	BidHistory        []string            `json:"bidHistory"`
	PlayHistory       []string            `json:"playHistory"`
	LastPlay          *PlayEvent          `json:"lastPlay,omitempty"`
	LastTrickWinnerID string              `json:"lastTrickWinnerId,omitempty"`
	TrickAnimation    *TrickAnimation     `json:"trickAnimation,omitempty"`
	TrickCounts       map[string]int      `json:"trickCounts"`
}
