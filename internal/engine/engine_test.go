package engine

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"skat/internal/domain"
)

// fakeTimer is a pending callback under the fake scheduler's virtual clock.
type fakeTimer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler drives engine timers on a virtual clock. Timers fire only when
// the test asks for the next one, so every interleaving is deterministic.
type fakeScheduler struct {
	now    time.Time
	timers []*fakeTimer
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Unix(0, 0)}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{at: s.now.Add(d), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Now() time.Time {
	return s.now
}

// fireNext advances the clock to the earliest pending timer and runs it,
// reporting whether one existed.
func (s *fakeScheduler) fireNext() bool {
	var next *fakeTimer
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		if next == nil || t.at.Before(next.at) {
			next = t
		}
	}
	if next == nil {
		return false
	}
	if next.at.After(s.now) {
		s.now = next.at
	}
	next.fired = true
	next.fn()
	return true
}

func botSeats() []domain.Seat {
	return []domain.Seat{
		{ID: "b1", Bot: true},
		{ID: "b2", Bot: true},
		{ID: "b3", Bot: true},
	}
}

func humanSeats() []domain.Seat {
	return []domain.Seat{
		{ID: "p1"},
		{ID: "p2"},
		{ID: "p3"},
	}
}

func newTestEngine(seats []domain.Seat, seed int64) (*Engine, *fakeScheduler) {
	sched := newFakeScheduler()
	e := New(Config{Seats: seats}, sched, rand.New(rand.NewSource(seed)), nil)
	return e, sched
}

// fireOne fails the test when the engine has no pending timer to run.
func fireOne(t *testing.T, sched *fakeScheduler, e *Engine) {
	t.Helper()
	if !sched.fireNext() {
		t.Fatalf("No pending timer in state %s", e.Snapshot().State)
	}
}

// promptAction returns the first enabled prompt option carrying the action type.
func promptAction(t *testing.T, snap Snapshot, actionType ActionType) Action {
	t.Helper()
	if snap.Prompt == nil {
		t.Fatalf("No prompt in state %s", snap.State)
	}
	for _, opt := range snap.Prompt.Options {
		if opt.Action.Type == actionType && !opt.Disabled {
			return opt.Action
		}
	}
	t.Fatalf("Prompt %s has no enabled %s option", snap.Prompt.Kind, actionType)
	return Action{}
}

func currentPlayerView(t *testing.T, snap Snapshot) PlayerView {
	t.Helper()
	for _, p := range snap.Players {
		if p.ID == snap.CurrentPlayerID {
			return p
		}
	}
	t.Fatalf("Current player %s not in snapshot", snap.CurrentPlayerID)
	return PlayerView{}
}

func TestBotGameRunsToCompletion(t *testing.T) {
	e, sched := newTestEngine(botSeats(), 1)
	e.StartGame()

	for i := 0; i < 5000; i++ {
		if e.Snapshot().State == StateGameEnd {
			break
		}
		fireOne(t, sched, e)
	}

	snap := e.Snapshot()
	if snap.State != StateGameEnd {
		t.Fatalf("Engine stuck in state %s, want %s", snap.State, StateGameEnd)
	}
	if snap.Prompt == nil || snap.Prompt.Kind != PromptGameEnd {
		t.Fatalf("Expected the game end prompt, got %+v", snap.Prompt)
	}
	if snap.Round != domain.TotalRounds+1 {
		t.Fatalf("Round = %d at game end, want %d", snap.Round, domain.TotalRounds+1)
	}

	// Every finished round contributes either 0 points (thrown in) or the full
	// deck's 120.
	total := 0
	for _, points := range snap.Scores {
		total += points
	}
	if total%domain.TotalCardPoints != 0 {
		t.Fatalf("Cumulative scores sum to %d, want a multiple of %d", total, domain.TotalCardPoints)
	}
}

func TestRestartResetsGame(t *testing.T) {
	e, sched := newTestEngine(botSeats(), 2)
	e.StartGame()
	for i := 0; i < 5000 && e.Snapshot().State != StateGameEnd; i++ {
		fireOne(t, sched, e)
	}
	if e.Snapshot().State != StateGameEnd {
		t.Fatalf("Game did not finish")
	}

	e.DispatchPlayerAction(Action{Type: ActionRestart})

	snap := e.Snapshot()
	if snap.State != StateBid {
		t.Fatalf("State after restart = %s, want %s", snap.State, StateBid)
	}
	if snap.Round != 1 {
		t.Fatalf("Round after restart = %d, want 1", snap.Round)
	}
	for id, points := range snap.Scores {
		if points != 0 {
			t.Fatalf("Scores[%s] = %d after restart, want 0", id, points)
		}
	}
	for _, p := range snap.Players {
		if len(p.Hand) != domain.CardsPerHand {
			t.Fatalf("Player %s holds %d cards after restart, want %d", p.ID, len(p.Hand), domain.CardsPerHand)
		}
	}
}

func TestHumanAuction_AllPassThrowsRoundIn(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 3)

	var sawThrowIn bool
	unsubscribe := e.Subscribe(func(snap Snapshot) {
		for _, line := range snap.BidHistory {
			if line == "nobody bids, round is thrown in" {
				sawThrowIn = true
			}
		}
	})
	defer unsubscribe()

	e.StartGame()

	snap := e.Snapshot()
	if snap.State != StateBid || snap.Prompt == nil || snap.Prompt.Kind != PromptBid {
		t.Fatalf("Expected a bid prompt after start, got state %s prompt %+v", snap.State, snap.Prompt)
	}

	// Two passes end a three-seat auction.
	for i := 0; i < 2; i++ {
		promptAction(t, e.Snapshot(), ActionBid)
		e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidPass}})
		fireOne(t, sched, e)
	}

	if !sawThrowIn {
		t.Fatalf("Expected the thrown-in history line during the auction")
	}

	snap = e.Snapshot()
	if snap.Round != 2 {
		t.Fatalf("Round = %d after a thrown-in auction, want 2", snap.Round)
	}
	if snap.State != StateBid {
		t.Fatalf("State = %s after a thrown-in auction, want %s", snap.State, StateBid)
	}
	if snap.BidValue != 0 {
		t.Fatalf("BidValue = %d in the fresh round, want 0", snap.BidValue)
	}
}

func TestRejectedActionsLeaveSnapshotUnchanged(t *testing.T) {
	e, _ := newTestEngine(humanSeats(), 4)
	e.StartGame()

	before := e.Snapshot()

	rejected := []Action{
		{Type: ActionPlayCard, Card: &domain.Card{Rank: domain.Ace, Suit: domain.Clubs}},
		{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidValue, Value: 999}},
		{Type: ActionBid},
		{Type: ActionAnnounce, Announce: domain.AnnounceGrand},
		{Type: "bogus"},
	}
	for _, a := range rejected {
		e.DispatchPlayerAction(a)
		after := e.Snapshot()
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("Rejected action %+v changed the snapshot", a)
		}
	}
}

func TestHumanDeclarerFlow(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 5)
	e.StartGame()

	// Forehand bids the ladder minimum, the other two seats pass.
	snap := e.Snapshot()
	declarerID := snap.CurrentPlayerID
	bid := promptAction(t, snap, ActionBid)
	if bid.Bid == nil || bid.Bid.Kind != domain.BidPass {
		t.Fatalf("First prompt option should be the pass")
	}
	e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidValue, Value: 18}})
	fireOne(t, sched, e)

	for i := 0; i < 2; i++ {
		e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidPass}})
		fireOne(t, sched, e)
	}

	snap = e.Snapshot()
	if snap.State != StateShouldTakeSkat {
		t.Fatalf("State = %s after the auction, want %s", snap.State, StateShouldTakeSkat)
	}
	if snap.DeclarerID != declarerID || snap.CurrentPlayerID != declarerID {
		t.Fatalf("Declarer = %q, current = %q, want %q", snap.DeclarerID, snap.CurrentPlayerID, declarerID)
	}
	if snap.BidValue != 18 {
		t.Fatalf("BidValue = %d, want 18", snap.BidValue)
	}

	// Pick up the skat.
	e.DispatchPlayerAction(Action{Type: ActionShouldTakeSkat, Take: true})

	snap = e.Snapshot()
	if snap.State != StateSkatTake {
		t.Fatalf("State = %s after taking the skat, want %s", snap.State, StateSkatTake)
	}
	hand := currentPlayerView(t, snap).Hand
	if len(hand) != domain.CardsPerHand+domain.SkatSize {
		t.Fatalf("Declarer holds %d cards with the skat, want %d", len(hand), domain.CardsPerHand+domain.SkatSize)
	}
	if snap.Prompt == nil || snap.Prompt.Kind != PromptSkatDiscard {
		t.Fatalf("Expected the skat discard prompt, got %+v", snap.Prompt)
	}
	for _, opt := range snap.Prompt.Options {
		if opt.Action.Type == ActionConfirmSkatDiscard && !opt.Disabled {
			t.Fatalf("Confirm must be disabled before two cards are selected")
		}
	}

	// Select two cards, confirm the discard.
	e.DispatchPlayerAction(Action{Type: ActionToggleSkatCard, Card: &hand[0]})
	if got := len(e.Snapshot().SkatSelection); got != 1 {
		t.Fatalf("SkatSelection holds %d cards after one toggle, want 1", got)
	}
	e.DispatchPlayerAction(Action{Type: ActionToggleSkatCard, Card: &hand[1]})
	snap = e.Snapshot()
	if got := len(snap.SkatSelection); got != 2 {
		t.Fatalf("SkatSelection holds %d cards after two toggles, want 2", got)
	}
	promptAction(t, snap, ActionConfirmSkatDiscard)

	e.DispatchPlayerAction(Action{Type: ActionConfirmSkatDiscard})

	snap = e.Snapshot()
	if snap.State != StateAnnounce {
		t.Fatalf("State = %s after the discard, want %s", snap.State, StateAnnounce)
	}
	if got := len(currentPlayerView(t, snap).Hand); got != domain.CardsPerHand {
		t.Fatalf("Declarer holds %d cards after the discard, want %d", got, domain.CardsPerHand)
	}
	if snap.Prompt == nil || len(snap.Prompt.Options) != len(domain.AvailableAnnounces()) {
		t.Fatalf("Expected one announce option per game type, got %+v", snap.Prompt)
	}

	// Announce clubs and play out one trick.
	e.DispatchPlayerAction(Action{Type: ActionAnnounce, Announce: domain.AnnounceClubs})

	snap = e.Snapshot()
	if snap.State != StateCardPlay {
		t.Fatalf("State = %s after the announce, want %s", snap.State, StateCardPlay)
	}
	if snap.Announce != domain.AnnounceClubs {
		t.Fatalf("Announce = %s, want %s", snap.Announce, domain.AnnounceClubs)
	}
	lead := currentPlayerView(t, snap)
	if len(snap.PlayableCards) != len(lead.Hand) {
		t.Fatalf("Leading seat may play %d cards, want the whole hand of %d", len(snap.PlayableCards), len(lead.Hand))
	}

	for i := 0; i < domain.CardsPerTrick; i++ {
		snap = e.Snapshot()
		if len(snap.PlayableCards) == 0 {
			t.Fatalf("No playable cards for %s", snap.CurrentPlayerID)
		}
		card := snap.PlayableCards[0]
		e.DispatchPlayerAction(Action{Type: ActionPlayCard, Card: &card})
	}

	snap = e.Snapshot()
	if snap.State != StateTakeTrick {
		t.Fatalf("State = %s after three cards, want %s", snap.State, StateTakeTrick)
	}
	if snap.TrickAnimation == nil || len(snap.TrickAnimation.Cards) != domain.CardsPerTrick {
		t.Fatalf("Expected a three-card trick animation, got %+v", snap.TrickAnimation)
	}
	winner := snap.TrickAnimation.WinnerID

	fireOne(t, sched, e)

	snap = e.Snapshot()
	if snap.State != StateCardPlay {
		t.Fatalf("State = %s after the animation, want %s", snap.State, StateCardPlay)
	}
	if snap.CurrentPlayerID != winner {
		t.Fatalf("Lead = %s after the trick, want winner %s", snap.CurrentPlayerID, winner)
	}
	if snap.TrickCounts[winner] != 1 {
		t.Fatalf("TrickCounts[%s] = %d, want 1", winner, snap.TrickCounts[winner])
	}
	if snap.TrickAnimation != nil {
		t.Fatalf("Trick animation not cleared after its duration")
	}
}

func TestCardPlayPromptAutoClears(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 5)
	e.StartGame()

	// Same auction path as the declarer flow: one bid, two passes.
	e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidValue, Value: 18}})
	fireOne(t, sched, e)
	for i := 0; i < 2; i++ {
		e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidPass}})
		fireOne(t, sched, e)
	}
	e.DispatchPlayerAction(Action{Type: ActionShouldTakeSkat, Take: false})
	e.DispatchPlayerAction(Action{Type: ActionAnnounce, Announce: domain.AnnounceGrand})

	snap := e.Snapshot()
	if snap.State != StateCardPlay || snap.Prompt == nil {
		t.Fatalf("Expected a card play prompt, got state %s prompt %+v", snap.State, snap.Prompt)
	}

	fireOne(t, sched, e)

	snap = e.Snapshot()
	if snap.Prompt != nil {
		t.Fatalf("Prompt still present after its visibility window")
	}
	if len(snap.PlayableCards) == 0 {
		t.Fatalf("Playable cards must survive the prompt auto-clear")
	}
}

func TestSetAutomatedTakesOverWaitingSeat(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 6)
	e.StartGame()

	snap := e.Snapshot()
	if snap.Prompt == nil {
		t.Fatalf("Expected a bid prompt")
	}
	waiting := snap.CurrentPlayerID

	e.SetAutomated(waiting, true)

	snap = e.Snapshot()
	if snap.Prompt != nil {
		t.Fatalf("Prompt still pending after automating the waiting seat")
	}

	fireOne(t, sched, e)

	if len(e.Snapshot().BidHistory) == 0 {
		t.Fatalf("Automated seat did not act on its timer")
	}
}

func TestSetAutomatedPreservesAuctionProgress(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 9)
	e.StartGame()

	// Forehand passes and drops out of the auction.
	passed := e.Snapshot().CurrentPlayerID
	e.DispatchPlayerAction(Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidPass}})
	fireOne(t, sched, e)

	next := e.Snapshot().CurrentPlayerID
	if next == passed {
		t.Fatalf("Turn did not advance past the passed seat")
	}

	e.SetAutomated(next, true)

	snap := e.Snapshot()
	if snap.CurrentPlayerID == passed {
		t.Fatalf("Passed seat %s re-activated after automating %s", passed, next)
	}
	if snap.CurrentPlayerID != next {
		t.Fatalf("Current = %s after automating %s", snap.CurrentPlayerID, next)
	}
	if snap.Prompt != nil {
		t.Fatalf("Human prompt still pending for the automated seat")
	}
	if !currentPlayerView(t, snap).Bot {
		t.Fatalf("Seat %s not flagged automated", next)
	}

	fireOne(t, sched, e)

	hist := e.Snapshot().BidHistory
	if len(hist) != 2 {
		t.Fatalf("BidHistory = %v, want the recorded pass plus the automated move", hist)
	}
	if hist[0] != fmt.Sprintf("%s passes", passed) {
		t.Fatalf("Recorded pass lost across re-entry, history %v", hist)
	}
	if !strings.HasPrefix(hist[1], next) {
		t.Fatalf("Automated seat did not act next, history %v", hist)
	}
}

func TestDuplicatePassDuringBidPauseIgnored(t *testing.T) {
	e, sched := newTestEngine(humanSeats(), 10)
	e.StartGame()

	first := e.Snapshot().CurrentPlayerID
	pass := Action{Type: ActionBid, Bid: &domain.BidOffer{Kind: domain.BidPass}}
	e.DispatchPlayerAction(pass)
	e.DispatchPlayerAction(pass)

	if hist := e.Snapshot().BidHistory; len(hist) != 1 {
		t.Fatalf("BidHistory = %v after a repeated pass, want one line", hist)
	}

	fireOne(t, sched, e)

	snap := e.Snapshot()
	if snap.State != StateBid || snap.Round != 1 {
		t.Fatalf("Auction ended early, state %s round %d", snap.State, snap.Round)
	}
	if snap.CurrentPlayerID == first {
		t.Fatalf("Turn stayed on the passed seat %s", first)
	}
	if snap.Prompt == nil || snap.Prompt.Kind != PromptBid {
		t.Fatalf("Expected the next seat's bid prompt, got %+v", snap.Prompt)
	}
}

func TestHistoryKeepsOnlyRecentLines(t *testing.T) {
	e, _ := newTestEngine(humanSeats(), 11)

	e.mu.Lock()
	for i := 0; i < historyLimit+4; i++ {
		e.pushBidHistory(fmt.Sprintf("bid line %d", i))
		e.pushPlayHistory(fmt.Sprintf("play line %d", i))
	}
	e.mu.Unlock()

	snap := e.Snapshot()
	if len(snap.BidHistory) != historyLimit {
		t.Fatalf("BidHistory holds %d lines, want %d", len(snap.BidHistory), historyLimit)
	}
	if len(snap.PlayHistory) != historyLimit {
		t.Fatalf("PlayHistory holds %d lines, want %d", len(snap.PlayHistory), historyLimit)
	}
	if snap.PlayHistory[0] != "play line 4" {
		t.Fatalf("Oldest lines not evicted, history starts with %q", snap.PlayHistory[0])
	}
	if last := snap.PlayHistory[historyLimit-1]; last != fmt.Sprintf("play line %d", historyLimit+3) {
		t.Fatalf("Newest line missing, history ends with %q", last)
	}
}

func TestSubscribe(t *testing.T) {
	e, _ := newTestEngine(humanSeats(), 7)

	calls := 0
	unsubscribe := e.Subscribe(func(Snapshot) {
		calls++
	})

	if calls != 1 {
		t.Fatalf("Subscribe delivered %d snapshots synchronously, want 1", calls)
	}

	e.StartGame()
	if calls < 2 {
		t.Fatalf("Listener missed the start transitions, calls = %d", calls)
	}

	unsubscribe()
	before := calls
	e.DispatchPlayerAction(Action{Type: "bogus"})
	if calls != before {
		t.Fatalf("Listener called after unsubscribe")
	}
}

func TestTransitionPanicsOnUnknownState(t *testing.T) {
	e, _ := newTestEngine(humanSeats(), 8)
	defer func() {
		if recover() == nil {
			t.Fatalf("transition to an unknown state should panic")
		}
	}()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transition(State("NO_SUCH_STATE"))
}
