// Package scheduler enforces the turn deadlines the table engine publishes.
// The engine treats deadlines as data; this package is the component that
// actually watches the clock and forces a fold or bow-out when it expires.
package scheduler

import (
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/weedbox/timebank"

	"github.com/bullring/bossfight/pkg/bossfight"
)

// Engine is the slice of the table the scheduler needs.
type Engine interface {
	PublicSnapshot() bossfight.TableSnapshot
	SeatPlayerID(seatIndex int) string
	BetAction(playerID string, action bossfight.BetAction) error
	BowOut(playerID string) error
	ForceFoldSeat(seatIndex int)
}

// expectation pins down the turn a timer was armed for. If the table has
// moved on by the time the timer fires, the fire is stale and ignored.
type expectation struct {
	seat       int
	kind       bossfight.ActionKind
	deadlineMs int64
}

// TurnScheduler arms one timer for the table's current acting seat. Call
// Sync after every command that may have moved the turn; it cancels any
// armed timer and re-arms against the latest snapshot.
type TurnScheduler struct {
	mu    sync.Mutex
	table Engine
	log   slog.Logger
	tb    *timebank.TimeBank

	// onEnforced, when set, runs after the scheduler forces an action so
	// the transport can rebroadcast state.
	onEnforced func()
}

// NewTurnScheduler builds a scheduler for table. onEnforced may be nil.
func NewTurnScheduler(table Engine, log slog.Logger, onEnforced func()) *TurnScheduler {
	if log == nil {
		log = slog.Disabled
	}
	return &TurnScheduler{
		table:      table,
		log:        log,
		tb:         timebank.NewTimeBank(),
		onEnforced: onEnforced,
	}
}

// Sync re-arms the deadline timer from the table's current snapshot. With no
// seat on the clock it just cancels.
func (s *TurnScheduler) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tb.Cancel()
	s.tb = timebank.NewTimeBank()

	snap := s.table.PublicSnapshot()
	if snap.ToActSeat < 0 || snap.ActionKind == "" || snap.ActionDeadline == 0 {
		return
	}

	exp := expectation{
		seat:       snap.ToActSeat,
		kind:       snap.ActionKind,
		deadlineMs: snap.ActionDeadline,
	}
	deadline := time.UnixMilli(snap.ActionDeadline)
	if err := s.tb.NewTaskWithDeadline(deadline, func(isCancelled bool) {
		if isCancelled {
			return
		}
		s.enforce(exp)
	}); err != nil {
		s.log.Errorf("failed to arm turn timer for seat %d: %v", exp.seat, err)
	}
}

// Stop cancels any armed timer.
func (s *TurnScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tb.Cancel()
}

func (s *TurnScheduler) enforce(exp expectation) {
	snap := s.table.PublicSnapshot()
	if snap.ToActSeat != exp.seat || snap.ActionKind != exp.kind ||
		snap.ActionDeadline != exp.deadlineMs {
		// The turn moved before the timer fired.
		return
	}

	playerID := s.table.SeatPlayerID(exp.seat)
	switch {
	case playerID == "":
		s.table.ForceFoldSeat(exp.seat)
	case exp.kind == bossfight.ActionReveal:
		s.log.Infof("seat %d missed the reveal deadline, bowing out", exp.seat)
		if err := s.table.BowOut(playerID); err != nil {
			s.log.Warnf("bow-out for seat %d failed (%v), force-folding", exp.seat, err)
			s.table.ForceFoldSeat(exp.seat)
		}
	default:
		s.log.Infof("seat %d missed the action deadline, folding", exp.seat)
		if err := s.table.BetAction(playerID, bossfight.BetFold); err != nil {
			s.log.Warnf("timeout fold for seat %d failed (%v), force-folding", exp.seat, err)
			s.table.ForceFoldSeat(exp.seat)
		}
	}

	s.Sync()
	if s.onEnforced != nil {
		s.onEnforced()
	}
}
