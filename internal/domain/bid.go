package domain

// BidKind discriminates a pass from a value bid.
type BidKind string

const (
	BidPass  BidKind = "pass"
	BidValue BidKind = "value"
)

// BidOffer is a single choice presented to a bidder.
type BidOffer struct {
	Kind  BidKind `json:"kind"`
	Value int     `json:"value,omitempty"`
}

// Bid tracks the auction state for one round. The top bidder is referenced by
// player id, resolved against the game's player list. Passes are recorded per
// seat so the active set can be rebuilt after an interruption.
type Bid struct {
	Passed      []string
	Kind        BidKind
	Value       int
	TopBidderID string
}

// NewBid returns a fresh auction with no bids recorded.
func NewBid() *Bid {
	return &Bid{Kind: BidPass}
}

// Apply records a bidder's decision. A repeated pass from the same seat is a
// no-op.
func (b *Bid) Apply(playerID string, offer BidOffer) {
	if offer.Kind == BidPass {
		if !b.HasPassed(playerID) {
			b.Passed = append(b.Passed, playerID)
		}
		return
	}
	b.Kind = offer.Kind
	b.Value = offer.Value
	b.TopBidderID = playerID
}

// HasPassed reports whether the given seat has already passed.
func (b *Bid) HasPassed(id string) bool {
	for _, p := range b.Passed {
		if p == id {
			return true
		}
	}
	return false
}

// Started reports whether any decision has been recorded.
func (b *Bid) Started() bool {
	return len(b.Passed) > 0 || b.Value > 0
}

// Finished reports whether two of the three seats have passed.
func (b *Bid) Finished() bool {
	return len(b.Passed) >= 2
}
