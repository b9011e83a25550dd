package engine

import "skat/internal/domain"

// ActionType discriminates player-driven actions.
type ActionType string

const (
	ActionBid                ActionType = "bid"
	ActionShouldTakeSkat     ActionType = "should_take_skat"
	ActionToggleSkatCard     ActionType = "toggle_skat_card"
	ActionConfirmSkatDiscard ActionType = "confirm_skat_discard"
	ActionSkatDiscard        ActionType = "skat_discard"
	ActionAnnounce           ActionType = "announce"
	ActionPlayCard           ActionType = "play_card"
	ActionRestart            ActionType = "restart"
)

// Action is the single payload type accepted by DispatchPlayerAction. Only the
// fields matching the Type are read; unknown or currently-illegal actions are
// silently ignored.
type Action struct {
	Type     ActionType          `json:"type"`
	Bid      *domain.BidOffer    `json:"bid,omitempty"`
	Take     bool                `json:"take,omitempty"`
	Announce domain.AnnounceType `json:"announce,omitempty"`
	Card     *domain.Card        `json:"card,omitempty"`
	Cards    []domain.Card       `json:"cards,omitempty"`
}
