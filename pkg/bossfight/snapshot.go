package bossfight

import (
	"github.com/bullring/bossfight/pkg/cards"
)

// BossPublic is the shared boss hand as spectators see it: the revealed
// cards, how many remain hidden, and the running ace-low total of what is
// showing.
type BossPublic struct {
	RevealedCards []cards.Card `json:"revealed_cards"`
	HiddenCount   int          `json:"hidden_count"`
	Total         int          `json:"total"`
}

// SeatPublic is the spectator view of one seat. Hole cards never appear
// here.
type SeatPublic struct {
	Index        int        `json:"index"`
	PlayerID     string     `json:"player_id,omitempty"`
	DisplayName  string     `json:"display_name,omitempty"`
	Bankroll     int64      `json:"bankroll"`
	Status       SeatStatus `json:"status"`
	BetThisRound int64      `json:"bet_this_round"`
	BetTotal     int64      `json:"bet_total"`
	IsDealer     bool       `json:"is_dealer"`
	IsActing     bool       `json:"is_acting"`
	HasSubmitted bool       `json:"has_submitted"`
}

// TableSnapshot is a point-in-time copy of everything public about the
// table. It shares no memory with live state.
type TableSnapshot struct {
	TableID      string       `json:"table_id"`
	HandNumber   int64        `json:"hand_number"`
	Phase        HandPhase    `json:"phase"`
	BettingRound BettingRound `json:"betting_round,omitempty"`
	DealerSeat   int          `json:"dealer_seat"`
	PotTotal     int64        `json:"pot_total"`
	CurrentBet   int64        `json:"current_bet"`
	RaisesUsed   int          `json:"raises_used"`
	OxtailRound  int          `json:"oxtail_round"`
	Boss         BossPublic   `json:"boss"`
	Seats        []SeatPublic `json:"seats"`
	ToActSeat    int          `json:"to_act_seat"`
	ActionKind   ActionKind   `json:"action_kind,omitempty"`

	// ActionDeadline is the acting seat's deadline in unix milliseconds,
	// zero when nobody is on the clock. Schedulers enforce it; the engine
	// only publishes it.
	ActionDeadline int64 `json:"action_deadline"`
}

// PrivateState is what one player may see beyond the public snapshot: their
// own cards, their working selection, and the moves currently open to them.
type PrivateState struct {
	PlayerID  string       `json:"player_id"`
	SeatIndex int          `json:"seat_index"`
	Bankroll  int64        `json:"bankroll"`
	Hand      []cards.Card `json:"hand,omitempty"`

	Selection ComboSelection  `json:"selection"`
	Submitted *ComboSelection `json:"submitted,omitempty"`

	LegalActions   []BetAction `json:"legal_actions,omitempty"`
	CanSubmitCombo bool        `json:"can_submit_combo"`
	CanBowOut      bool        `json:"can_bow_out"`
}

// PublicSnapshot returns the spectator view of the table.
func (t *Table) PublicSnapshot() TableSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.publicSnapshotLocked()
}

func (t *Table) publicSnapshotLocked() TableSnapshot {
	h := t.hand
	snap := TableSnapshot{
		TableID:      t.cfg.ID,
		HandNumber:   h.handNumber,
		Phase:        t.phase(),
		BettingRound: h.bettingRound,
		DealerSeat:   t.dealerSeat,
		PotTotal:     h.potTotal,
		OxtailRound:  h.oxtailRound,
		ToActSeat:    h.actionSeat,
		ActionKind:   h.actionKind,
	}
	if h.bet != nil {
		snap.CurrentBet = h.bet.currentBet
		snap.RaisesUsed = h.bet.raisesUsed
	}
	if !h.actionDeadline.IsZero() {
		snap.ActionDeadline = h.actionDeadline.UnixMilli()
	}

	visible := t.visibleBossCards()
	snap.Boss = BossPublic{
		RevealedCards: append([]cards.Card(nil), visible...),
		HiddenCount:   len(h.bossCards) - len(visible),
	}
	for _, c := range visible {
		snap.Boss.Total += cards.BossValue(c.Rank)
	}

	snap.Seats = make([]SeatPublic, len(t.seats))
	for i, s := range t.seats {
		rt := h.seats[i]
		sp := SeatPublic{
			Index:    i,
			Status:   s.Status,
			IsDealer: i == t.dealerSeat,
			// Contributions are published even for a vacated seat so the
			// per-seat totals always account for the whole pot.
			BetThisRound: rt.contribRound,
			BetTotal:     rt.contribTotal,
		}
		if s.PlayerID != "" {
			p := t.players[s.PlayerID]
			sp.PlayerID = p.ID
			sp.DisplayName = p.DisplayName
			sp.Bankroll = p.Bankroll
			sp.IsActing = h.actionSeat == i
			sp.HasSubmitted = p.Submitted != nil
		}
		snap.Seats[i] = sp
	}
	return snap
}

// PrivateState returns the given player's own view. The hand and selections
// are copies.
func (t *Table) PrivateState(playerID string) (*PrivateState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	ps := &PrivateState{
		PlayerID:  p.ID,
		SeatIndex: p.SeatIndex,
		Bankroll:  p.Bankroll,
		Hand:      append([]cards.Card(nil), p.Hand...),
		Selection: p.Selection.clone(),
	}
	if p.Submitted != nil {
		sub := p.Submitted.clone()
		ps.Submitted = &sub
	}
	if p.SeatIndex == -1 {
		return ps, nil
	}

	h := t.hand
	rt := h.seats[p.SeatIndex]
	live := rt.inHand && !rt.folded && !rt.bowedOut
	ps.LegalActions = t.legalBetActions(p.SeatIndex)
	onRevealTurn := live && t.phase() == PhaseReveal &&
		h.actionKind == ActionReveal && h.actionSeat == p.SeatIndex
	ps.CanSubmitCombo = onRevealTurn
	ps.CanBowOut = live && t.phase() == PhaseReveal
	return ps, nil
}

// legalBetActions projects the moves open to seat right now, nil when the
// seat is not the acting seat of an open betting round.
func (t *Table) legalBetActions(seat int) []BetAction {
	h := t.hand
	if h.bet == nil || h.actionKind != ActionBet || h.actionSeat != seat {
		return nil
	}
	rt := h.seats[seat]
	if !rt.inHand || rt.folded || rt.bowedOut || rt.allIn {
		return nil
	}
	p := t.playerAtSeat(seat)

	acts := []BetAction{BetFold}
	if h.bet.currentBet <= rt.contribRound {
		acts = append(acts, BetCheck)
	} else {
		acts = append(acts, BetCall)
	}
	if h.bet.raisesUsed < t.cfg.MaxRaisesPerRound &&
		p.Bankroll >= h.bet.currentBet+t.cfg.BetUnit-rt.contribRound {
		acts = append(acts, BetRaise)
	}
	if p.Bankroll > 0 {
		acts = append(acts, BetAllIn)
	}
	return acts
}

// Phase reports the table's current lifecycle phase.
func (t *Table) Phase() HandPhase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.phase()
}

// SeatPlayerID returns the ID of the player in the given seat, empty when
// the seat is out of range or vacant.
func (t *Table) SeatPlayerID(seatIndex int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if seatIndex < 0 || seatIndex >= len(t.seats) {
		return ""
	}
	return t.seats[seatIndex].PlayerID
}

// PlayerSeat returns the seat a player holds, -1 when unknown or unseated.
func (t *Table) PlayerSeat(playerID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if p, ok := t.players[playerID]; ok {
		return p.SeatIndex
	}
	return -1
}
