package bossfight

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/google/uuid"
	"github.com/thoas/go-funk"

	"github.com/bullring/bossfight/pkg/cards"
	"github.com/bullring/bossfight/pkg/scoring"
	"github.com/bullring/bossfight/pkg/statemachine"
)

// SeatStatus is the publicly visible state of one seat.
type SeatStatus string

const (
	SeatOpen      SeatStatus = "open"
	SeatWaiting   SeatStatus = "waiting"
	SeatActing    SeatStatus = "acting"
	SeatFolded    SeatStatus = "folded"
	SeatAllIn     SeatStatus = "all_in"
	SeatRevealing SeatStatus = "revealing"
	SeatBowedOut  SeatStatus = "bowed_out"
)

// Seat is one of the table's fixed positions.
type Seat struct {
	Index    int
	PlayerID string
	Status   SeatStatus
}

// seatRuntime is the per-seat state of the current hand. Slots for vacant
// seats stay zeroed.
type seatRuntime struct {
	inHand   bool
	folded   bool
	bowedOut bool
	allIn    bool

	contribRound int64
	contribTotal int64
}

// handRuntime holds everything scoped to a single hand. A fresh one is built
// when a hand starts, so stale state can never leak across hands.
type handRuntime struct {
	handNumber   int64
	deck         *cards.Deck
	bossCards    []cards.Card
	bossRevealed int
	potTotal     int64
	oxtailRound  int

	bettingRound BettingRound
	bet          *betRoundState

	actionSeat     int
	actionKind     ActionKind
	actionDeadline time.Time

	revealQueue []int

	seats []seatRuntime
}

func newHandRuntime(seatCount int) *handRuntime {
	return &handRuntime{
		actionSeat: -1,
		seats:      make([]seatRuntime, seatCount),
	}
}

// Table is the authoritative engine for one table. Every exported method
// takes the table lock, so commands from any number of goroutines serialize
// into one total order. The table never runs timers; turn deadlines are
// published in snapshots for a scheduler to enforce.
type Table struct {
	mu  sync.RWMutex
	cfg TableConfig
	log slog.Logger
	rng *rand.Rand
	now func() time.Time

	players map[string]*Player
	seats   []*Seat

	dealerSeat int
	handCount  int64
	hand       *handRuntime

	sm *statemachine.Machine[Table]
}

// NewTable validates cfg and builds an empty table in the waiting phase.
func NewTable(cfg TableConfig) (*Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	t := &Table{
		cfg:        cfg,
		log:        log,
		rng:        rand.New(rand.NewSource(seed)),
		now:        now,
		players:    make(map[string]*Player),
		seats:      make([]*Seat, cfg.SeatCount),
		dealerSeat: -1,
		hand:       newHandRuntime(cfg.SeatCount),
	}
	for i := range t.seats {
		t.seats[i] = &Seat{Index: i, Status: SeatOpen}
	}
	t.sm = statemachine.New(t, nil)
	t.setPhase(PhaseWaiting)
	return t, nil
}

// Join adds a player to the roster with the starting bankroll and returns
// the player ID. An empty playerID gets a generated one. Joining again with
// a known ID is a no-op.
func (t *Table) Join(playerID, displayName string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if playerID == "" {
		playerID = uuid.NewString()
	}
	if _, ok := t.players[playerID]; ok {
		return playerID, nil
	}
	t.players[playerID] = &Player{
		ID:          playerID,
		DisplayName: displayName,
		Bankroll:    t.cfg.StartingBankroll,
		SeatIndex:   -1,
		JoinedAt:    t.now(),
	}
	t.log.Infof("table %s: player %s (%q) joined", t.cfg.ID, playerID, displayName)
	return playerID, nil
}

// UpdateDisplayName renames a roster entry.
func (t *Table) UpdateDisplayName(playerID, displayName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	p.DisplayName = displayName
	return nil
}

// TakeSeat puts a roster player into an open seat. Once two seats are
// filled a dealer is drawn at random among the occupants.
func (t *Table) TakeSeat(playerID string, seatIndex int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if seatIndex < 0 || seatIndex >= len(t.seats) {
		return ErrSeatNotFound
	}
	if t.seats[seatIndex].PlayerID != "" {
		return ErrSeatTaken
	}
	if p.SeatIndex != -1 {
		return ErrAlreadySeated
	}

	t.seats[seatIndex].PlayerID = playerID
	t.seats[seatIndex].Status = SeatWaiting
	p.SeatIndex = seatIndex
	t.deriveDealer()
	t.log.Infof("table %s: player %s took seat %d", t.cfg.ID, playerID, seatIndex)
	return nil
}

// deriveDealer draws a dealer at random once at least two seats are filled
// and no button is assigned.
func (t *Table) deriveDealer() {
	if t.dealerSeat != -1 {
		return
	}
	occ := t.occupiedSeatIndices()
	if len(occ) < 2 {
		return
	}
	t.dealerSeat = occ[t.rng.Intn(len(occ))]
	t.log.Debugf("table %s: dealer button assigned to seat %d", t.cfg.ID, t.dealerSeat)
}

// LeaveSeat vacates the player's seat. Leaving mid-hand forfeits the hand
// first, exactly as a forced fold would.
func (t *Table) LeaveSeat(playerID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.leaveSeatLocked(playerID)
}

func (t *Table) leaveSeatLocked(playerID string) error {
	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.SeatIndex == -1 {
		return ErrNotSeated
	}
	seat := p.SeatIndex
	t.forceFoldLocked(seat)

	t.seats[seat].PlayerID = ""
	t.seats[seat].Status = SeatOpen
	p.SeatIndex = -1
	p.Hand = nil
	p.Selection = ComboSelection{}
	p.Submitted = nil
	// The seat runtime stays: the forced fold above keeps the seat out of
	// the action, while its contributions remain counted in the pot. A
	// player sitting here mid-hand inherits the folded record and watches
	// until the next deal.
	if t.dealerSeat == seat {
		t.dealerSeat = -1
		t.deriveDealer()
	}
	t.log.Infof("table %s: player %s left seat %d", t.cfg.ID, playerID, seat)
	return nil
}

// LeaveTable removes the player from the table entirely, vacating their seat
// first if they hold one. Used by transports on disconnect.
func (t *Table) LeaveTable(playerID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.SeatIndex != -1 {
		if err := t.leaveSeatLocked(playerID); err != nil {
			return err
		}
	}
	delete(t.players, playerID)
	t.log.Infof("table %s: player %s left the table", t.cfg.ID, playerID)
	return nil
}

// StartHand deals a new hand. Only the player whose seat is next in dealer
// rotation may start one, and the rotation is committed only when the start
// succeeds.
func (t *Table) StartHand(playerID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.SeatIndex == -1 {
		return ErrNotSeated
	}
	if ph := t.phase(); ph != PhaseWaiting && ph != PhaseHandEnd {
		return ErrHandInProgress
	}
	occ := t.occupiedSeatIndices()
	if len(occ) < 2 {
		return ErrNeedTwoPlayers
	}

	candidate := t.dealerSeat
	switch {
	case candidate == -1:
		candidate = occ[t.rng.Intn(len(occ))]
	case t.seats[candidate].PlayerID == "" || t.handCount > 0:
		candidate = t.nextOccupiedSeat(candidate)
	}
	if p.SeatIndex != candidate {
		return ErrOnlyDealerStart
	}

	t.log.Infof("table %s: hand %d starting, dealer seat %d", t.cfg.ID, t.handCount+1, candidate)
	t.beginHand(candidate)
	return nil
}

func (t *Table) beginHand(dealer int) {
	t.dealerSeat = dealer
	t.handCount++
	t.hand = newHandRuntime(t.cfg.SeatCount)
	t.hand.handNumber = t.handCount
	t.setPhase(PhaseBlinds)

	t.hand.deck = cards.NewDeck(t.rng)
	t.hand.bossCards = t.hand.deck.DrawN(t.cfg.BossCardCount)
	for _, s := range t.occupiedSeats() {
		p := t.players[s.PlayerID]
		p.Hand = t.hand.deck.DrawN(t.cfg.HandCardCount)
		p.Selection = ComboSelection{}
		p.Submitted = nil
		t.hand.seats[s.Index].inHand = true
		s.Status = SeatWaiting
	}
	t.postBlinds()

	t.setPhase(PhaseRush)
	t.hand.bossRevealed = t.cfg.BossCardCount - 2
	t.openBettingRound(RoundRush)
}

func (t *Table) postBlinds() {
	sb := t.nextOccupiedSeat(t.dealerSeat)
	bb := t.nextOccupiedSeat(sb)
	sbPaid := t.contribute(t.playerAtSeat(sb), &t.hand.seats[sb], t.cfg.SmallBlind)
	bbPaid := t.contribute(t.playerAtSeat(bb), &t.hand.seats[bb], t.cfg.BigBlind)
	t.log.Debugf("table %s: blinds posted, seat %d paid %d, seat %d paid %d",
		t.cfg.ID, sb, sbPaid, bb, bbPaid)
}

// contribute moves up to amount from the player's bankroll into the pot and
// returns what was actually paid. Emptying the bankroll marks the seat
// all-in.
func (t *Table) contribute(p *Player, rt *seatRuntime, amount int64) int64 {
	amount = min(amount, p.Bankroll)
	p.Bankroll -= amount
	rt.contribRound += amount
	rt.contribTotal += amount
	t.hand.potTotal += amount
	if p.Bankroll == 0 {
		rt.allIn = true
	}
	return amount
}

func (t *Table) openBettingRound(round BettingRound) {
	opening := int64(0)
	start := t.nextOccupiedSeat(t.dealerSeat)
	if round == RoundRush {
		opening = t.cfg.BigBlind
		// Rush action opens past the blinds.
		start = t.nextOccupiedSeat(t.nextOccupiedSeat(start))
	}

	t.hand.bettingRound = round
	t.hand.bet = newBetRoundState(round, opening, t.buildTurnSequence(start, t.activeSeatIndices()))
	next := t.nextTurnSeat()
	if next == -1 {
		// Nobody can act, typically because the blinds put everyone all-in.
		t.closeBettingRound()
		return
	}
	t.hand.actionSeat = next
	t.hand.actionKind = ActionBet
	t.resetActionDeadline()
	t.syncSeatStatuses()
}

// BetAction applies the acting seat's move for the open betting round.
func (t *Table) BetAction(playerID string, action BetAction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.SeatIndex == -1 {
		return ErrNotSeated
	}
	h := t.hand
	if h.bet == nil || h.actionKind != ActionBet {
		return ErrNoBetRound
	}
	if h.actionSeat != p.SeatIndex {
		return ErrNotYourTurn
	}
	rt := &h.seats[p.SeatIndex]
	if !rt.inHand || rt.folded || rt.bowedOut {
		return ErrNotInHand
	}

	var err error
	switch action {
	case BetFold:
		rt.folded = true
	case BetCheck:
		err = t.applyCheck(rt)
	case BetCall:
		t.contribute(p, rt, h.bet.currentBet-rt.contribRound)
	case BetRaise:
		err = t.applyRaise(p, rt)
	case BetAllIn:
		err = t.applyAllIn(p, rt)
	default:
		return ErrUnknownAction
	}
	if err != nil {
		return err
	}

	t.log.Debugf("table %s: seat %d %s in %s round", t.cfg.ID, p.SeatIndex, action, h.bettingRound)
	t.advanceAfterBet(p.SeatIndex)
	return nil
}

func (t *Table) applyCheck(rt *seatRuntime) error {
	if t.hand.bet.currentBet > rt.contribRound {
		return ErrCannotCheck
	}
	return nil
}

func (t *Table) applyRaise(p *Player, rt *seatRuntime) error {
	st := t.hand.bet
	if st.raisesUsed >= t.cfg.MaxRaisesPerRound {
		return ErrRaiseCap
	}
	need := st.currentBet + t.cfg.BetUnit - rt.contribRound
	if need > p.Bankroll {
		return ErrNoStack
	}
	t.contribute(p, rt, need)
	st.currentBet += t.cfg.BetUnit
	st.raisesUsed++
	st.lastAggressor = p.SeatIndex
	st.reopen(p.SeatIndex, t.reopenableSeats())
	return nil
}

func (t *Table) applyAllIn(p *Player, rt *seatRuntime) error {
	if p.Bankroll <= 0 {
		return ErrNoStack
	}
	t.contribute(p, rt, p.Bankroll)
	st := t.hand.bet
	if rt.contribRound > st.currentBet {
		// An all-in above the current bet acts as a raise and reopens the
		// round, but never pushes the raise count past the cap.
		st.currentBet = rt.contribRound
		if st.raisesUsed < t.cfg.MaxRaisesPerRound {
			st.raisesUsed++
		}
		st.lastAggressor = p.SeatIndex
		st.reopen(p.SeatIndex, t.reopenableSeats())
	}
	return nil
}

func (t *Table) advanceAfterBet(seat int) {
	t.hand.bet.dropPending(seat)
	if len(t.activeSeatIndices()) <= 1 {
		t.resolveEarlyWin()
		return
	}
	next := t.nextTurnSeat()
	if next == -1 {
		t.closeBettingRound()
		return
	}
	t.hand.actionSeat = next
	t.hand.actionKind = ActionBet
	t.resetActionDeadline()
	t.syncSeatStatuses()
}

func (t *Table) closeBettingRound() {
	h := t.hand
	round := h.bettingRound
	h.bet = nil
	h.actionSeat = -1
	h.actionKind = ""
	h.actionDeadline = time.Time{}
	for i := range h.seats {
		h.seats[i].contribRound = 0
	}

	if len(t.activeSeatIndices()) <= 1 {
		t.resolveEarlyWin()
		return
	}

	switch round {
	case RoundRush:
		t.setPhase(PhaseCharge)
		h.bossRevealed = t.cfg.BossCardCount - 1
		t.openBettingRound(RoundCharge)
	case RoundCharge:
		t.setPhase(PhaseStomp)
		h.bossRevealed = t.cfg.BossCardCount
		t.openBettingRound(RoundStomp)
	case RoundStomp, RoundOxtail:
		t.enterReveal()
	}
}

func (t *Table) enterReveal() {
	t.setPhase(PhaseReveal)
	h := t.hand
	h.bettingRound = ""
	h.revealQueue = t.buildTurnSequence(t.nextOccupiedSeat(t.dealerSeat), t.activeSeatIndices())
	t.advanceRevealTurn()
}

func (t *Table) advanceRevealTurn() {
	h := t.hand
	for len(h.revealQueue) > 0 {
		seat := h.revealQueue[0]
		rt := &h.seats[seat]
		if t.seats[seat].PlayerID == "" || rt.folded || rt.bowedOut {
			h.revealQueue = h.revealQueue[1:]
			continue
		}
		h.actionSeat = seat
		h.actionKind = ActionReveal
		t.resetActionDeadline()
		t.syncSeatStatuses()
		return
	}
	h.actionSeat = -1
	h.actionKind = ""
	h.actionDeadline = time.Time{}
	t.resolveShowdown()
}

// ComboUpdate stores the player's working card selection. Legal at any point
// while the player is live in a hand; IDs not in the player's hand are
// dropped.
func (t *Table) ComboUpdate(playerID string, sel ComboSelection) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, _, err := t.livePlayer(playerID)
	if err != nil {
		return err
	}
	p.Selection = p.filterSelection(sel)
	return nil
}

// ComboSubmit commits the acting seat's combo during the reveal phase and
// passes the reveal turn on. The selection is filtered the same way
// ComboUpdate filters it.
func (t *Table) ComboSubmit(playerID string, sel ComboSelection) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, _, err := t.livePlayer(playerID)
	if err != nil {
		return err
	}
	if t.phase() != PhaseReveal {
		return ErrNotRevealPhase
	}
	h := t.hand
	if h.actionKind != ActionReveal || h.actionSeat != p.SeatIndex {
		return ErrNotYourTurn
	}

	p.Selection = p.filterSelection(sel)
	sub := p.Selection.clone()
	p.Submitted = &sub
	t.log.Debugf("table %s: seat %d submitted a %d-card combo",
		t.cfg.ID, p.SeatIndex, len(sub.CardIDs))

	h.revealQueue = h.revealQueue[1:]
	t.advanceRevealTurn()
	return nil
}

// BowOut withdraws the player from the showdown during the reveal phase.
// They forfeit any claim on the pot.
func (t *Table) BowOut(playerID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, rt, err := t.livePlayer(playerID)
	if err != nil {
		return err
	}
	if t.phase() != PhaseReveal {
		return ErrNotRevealPhase
	}

	rt.bowedOut = true
	rt.folded = true
	t.log.Debugf("table %s: seat %d bowed out", t.cfg.ID, p.SeatIndex)

	if t.hand.actionSeat == p.SeatIndex {
		t.hand.revealQueue = t.hand.revealQueue[1:]
		t.advanceRevealTurn()
		return nil
	}
	t.syncSeatStatuses()
	return nil
}

// ForceFoldSeat folds a seat out of the current hand regardless of whose
// turn it is. This is the deadline scheduler's hook; calling it on a seat
// that is vacant, out of the hand, or already folded does nothing.
func (t *Table) ForceFoldSeat(seatIndex int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forceFoldLocked(seatIndex)
}

func (t *Table) forceFoldLocked(seatIndex int) {
	if seatIndex < 0 || seatIndex >= len(t.seats) {
		return
	}
	h := t.hand
	rt := &h.seats[seatIndex]
	if !rt.inHand || rt.folded || rt.bowedOut {
		return
	}
	ph := t.phase()
	if ph == PhaseWaiting || ph == PhaseHandEnd {
		return
	}

	rt.folded = true
	t.log.Infof("table %s: seat %d force-folded", t.cfg.ID, seatIndex)

	if h.bet != nil {
		h.bet.dropPending(seatIndex)
		if len(t.activeSeatIndices()) <= 1 {
			t.resolveEarlyWin()
			return
		}
		if h.actionSeat == seatIndex {
			next := t.nextTurnSeat()
			if next == -1 {
				t.closeBettingRound()
				return
			}
			h.actionSeat = next
			t.resetActionDeadline()
		}
		t.syncSeatStatuses()
		return
	}

	if ph == PhaseReveal && h.actionSeat == seatIndex {
		h.revealQueue = h.revealQueue[1:]
		t.advanceRevealTurn()
		return
	}
	t.syncSeatStatuses()
}

func (t *Table) resolveShowdown() {
	h := t.hand
	var combos []scoring.Combo
	for _, s := range t.seats {
		if s.PlayerID == "" {
			continue
		}
		rt := &h.seats[s.Index]
		if !rt.inHand || rt.folded || rt.bowedOut {
			continue
		}
		p := t.players[s.PlayerID]
		if p.Submitted == nil {
			continue
		}
		aces := make(map[string]bool, len(p.Submitted.AcesAsEleven))
		for _, id := range p.Submitted.AcesAsEleven {
			aces[id] = true
		}
		combos = append(combos, scoring.Combo{
			SeatIndex:    s.Index,
			PlayerID:     p.ID,
			DisplayName:  p.DisplayName,
			Cards:        p.selectedCards(*p.Submitted),
			AcesAsEleven: aces,
		})
	}

	if len(combos) == 0 {
		t.awardPot(t.activeSeatIndices())
		return
	}

	res := scoring.Evaluate(t.visibleBossCards(), combos)
	t.log.Infof("table %s: showdown vs boss total %d (%s), %d winner(s)",
		t.cfg.ID, res.BossTotal, res.Tier, len(res.Winners))

	if res.Replay && h.oxtailRound < t.cfg.MaxOxtailRounds && h.deck.Size() > 0 {
		t.startOxtailRound()
		return
	}

	seats := make([]int, 0, len(res.Winners))
	for _, w := range res.Winners {
		seats = append(seats, w.SeatIndex)
	}
	t.awardPot(seats)
}

func (t *Table) startOxtailRound() {
	h := t.hand
	card, ok := h.deck.Draw()
	if !ok {
		return
	}
	h.bossCards = append(h.bossCards, card)
	h.oxtailRound++
	h.bossRevealed = t.cfg.BossCardCount + h.oxtailRound
	t.log.Infof("table %s: tie, oxtail round %d reveals an extra boss card", t.cfg.ID, h.oxtailRound)

	// The showdown repeats after the extra betting round, so everyone
	// submits again against the extended boss hand.
	for _, seat := range t.activeSeatIndices() {
		t.playerAtSeat(seat).Submitted = nil
	}

	t.setPhase(PhaseOxtail)
	t.openBettingRound(RoundOxtail)
}

func (t *Table) resolveEarlyWin() {
	t.awardPot(t.activeSeatIndices())
}

// awardPot splits the pot evenly across seats, giving any remainder cents to
// the first winner in seat order, then closes the hand.
func (t *Table) awardPot(seats []int) {
	h := t.hand
	if len(seats) > 0 && h.potTotal > 0 {
		sort.Ints(seats)
		share := h.potTotal / int64(len(seats))
		rem := h.potTotal % int64(len(seats))
		for i, seat := range seats {
			amt := share
			if i == 0 {
				amt += rem
			}
			t.playerAtSeat(seat).Bankroll += amt
			t.log.Infof("table %s: seat %d wins %d", t.cfg.ID, seat, amt)
		}
	}
	t.finishHand()
}

func (t *Table) finishHand() {
	h := t.hand
	h.bet = nil
	h.bettingRound = ""
	h.actionSeat = -1
	h.actionKind = ""
	h.actionDeadline = time.Time{}
	h.revealQueue = nil
	for _, s := range t.seats {
		if s.PlayerID == "" {
			continue
		}
		p := t.players[s.PlayerID]
		p.Hand = nil
		p.Selection = ComboSelection{}
		p.Submitted = nil
		s.Status = SeatWaiting
	}
	t.setPhase(PhaseHandEnd)
}

// livePlayer resolves a player who is seated and still live in the current
// hand.
func (t *Table) livePlayer(playerID string) (*Player, *seatRuntime, error) {
	p, ok := t.players[playerID]
	if !ok {
		return nil, nil, ErrPlayerNotFound
	}
	if p.SeatIndex == -1 {
		return nil, nil, ErrNotSeated
	}
	rt := &t.hand.seats[p.SeatIndex]
	if !rt.inHand || rt.folded || rt.bowedOut {
		return nil, nil, ErrNotInHand
	}
	return p, rt, nil
}

func (t *Table) playerAtSeat(idx int) *Player {
	if id := t.seats[idx].PlayerID; id != "" {
		return t.players[id]
	}
	return nil
}

func (t *Table) occupiedSeats() []*Seat {
	return funk.Filter(t.seats, func(s *Seat) bool { return s.PlayerID != "" }).([]*Seat)
}

func (t *Table) occupiedSeatIndices() []int {
	return funk.Map(t.occupiedSeats(), func(s *Seat) int { return s.Index }).([]int)
}

// activeSeatIndices lists seats still contending for the pot: occupied, in
// the hand, and neither folded nor bowed out. All-in seats stay active.
func (t *Table) activeSeatIndices() []int {
	live := funk.Filter(t.seats, func(s *Seat) bool {
		if s.PlayerID == "" {
			return false
		}
		rt := t.hand.seats[s.Index]
		return rt.inHand && !rt.folded && !rt.bowedOut
	}).([]*Seat)
	return funk.Map(live, func(s *Seat) int { return s.Index }).([]int)
}

// reopenableSeats lists the seats a raise puts back on the clock.
func (t *Table) reopenableSeats() []int {
	return funk.Filter(t.activeSeatIndices(), func(seat int) bool {
		return !t.hand.seats[seat].allIn
	}).([]int)
}

func (t *Table) nextOccupiedSeat(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if t.seats[idx].PlayerID != "" {
			return idx
		}
	}
	return from
}

// buildTurnSequence orders seats clockwise starting from start.
func (t *Table) buildTurnSequence(start int, seats []int) []int {
	n := len(t.seats)
	out := make([]int, 0, len(seats))
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if funk.Contains(seats, idx) {
			out = append(out, idx)
		}
	}
	return out
}

// nextTurnSeat walks the round's turn sequence from the cursor and returns
// the next seat that still owes an action, or -1 when none can act.
func (t *Table) nextTurnSeat() int {
	st := t.hand.bet
	for range st.turnSequence {
		st.cursor++
		if st.cursor >= len(st.turnSequence) {
			st.cursor = 0
		}
		seat := st.turnSequence[st.cursor]
		rt := &t.hand.seats[seat]
		if rt.folded || rt.bowedOut || rt.allIn || !st.isPending(seat) {
			continue
		}
		return seat
	}
	return -1
}

func (t *Table) visibleBossCards() []cards.Card {
	h := t.hand
	n := min(h.bossRevealed, len(h.bossCards))
	return h.bossCards[:n]
}

func (t *Table) resetActionDeadline() {
	t.hand.actionDeadline = t.now().Add(t.cfg.TurnTimeout)
}

func (t *Table) syncSeatStatuses() {
	for _, s := range t.seats {
		if s.PlayerID == "" {
			s.Status = SeatOpen
			continue
		}
		rt := t.hand.seats[s.Index]
		if !rt.inHand {
			s.Status = SeatWaiting
			continue
		}
		switch {
		case rt.bowedOut:
			s.Status = SeatBowedOut
		case rt.folded:
			s.Status = SeatFolded
		case rt.allIn:
			s.Status = SeatAllIn
		case t.hand.actionSeat == s.Index && t.hand.actionKind == ActionReveal:
			s.Status = SeatRevealing
		case t.hand.actionSeat == s.Index && t.hand.actionKind == ActionBet:
			s.Status = SeatActing
		default:
			s.Status = SeatWaiting
		}
	}
}
