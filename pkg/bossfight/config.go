package bossfight

import (
	"fmt"
	"time"

	"github.com/decred/slog"
)

// TableConfig carries the tunables for a single table. All money values are
// integer cents.
type TableConfig struct {
	ID string

	SeatCount        int
	StartingBankroll int64
	SmallBlind       int64
	BigBlind         int64
	BetUnit          int64

	MaxRaisesPerRound int
	MaxOxtailRounds   int

	HandCardCount int
	BossCardCount int

	// TurnTimeout is how long an acting seat has before the scheduler may
	// force a fold or bow-out. The engine only records the deadline; it never
	// runs timers itself.
	TurnTimeout time.Duration

	// Seed drives the deck shuffle. Zero means seed from the wall clock.
	Seed int64

	// Now supplies the clock used for action deadlines. Nil means time.Now.
	Now func() time.Time

	Log slog.Logger
}

// DefaultTableConfig returns the house defaults: a six-seat table with
// $500.00 starting bankrolls, $0.25/$1.00 blinds and a $1.00 bet unit.
func DefaultTableConfig(id string) TableConfig {
	return TableConfig{
		ID:                id,
		SeatCount:         6,
		StartingBankroll:  50000,
		SmallBlind:        25,
		BigBlind:          100,
		BetUnit:           100,
		MaxRaisesPerRound: 3,
		MaxOxtailRounds:   3,
		HandCardCount:     7,
		BossCardCount:     5,
		TurnTimeout:       30 * time.Second,
	}
}

func (cfg *TableConfig) validate() error {
	if cfg.SeatCount < 2 {
		return &Error{Kind: KindValidation, Code: fmt.Sprintf("seat count %d below minimum of 2", cfg.SeatCount)}
	}
	if cfg.StartingBankroll <= 0 {
		return &Error{Kind: KindValidation, Code: "starting bankroll must be positive"}
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind <= 0 || cfg.BetUnit <= 0 {
		return &Error{Kind: KindValidation, Code: "blinds and bet unit must be positive"}
	}
	if cfg.SmallBlind > cfg.BigBlind {
		return &Error{Kind: KindValidation, Code: "small blind exceeds big blind"}
	}
	if cfg.MaxRaisesPerRound < 0 || cfg.MaxOxtailRounds < 0 {
		return &Error{Kind: KindValidation, Code: "raise and replay caps cannot be negative"}
	}
	if cfg.HandCardCount <= 0 || cfg.BossCardCount <= 0 {
		return &Error{Kind: KindValidation, Code: "card counts must be positive"}
	}
	// Worst case every hand plus the boss and its replay extensions must fit
	// in one deck.
	need := cfg.SeatCount*cfg.HandCardCount + cfg.BossCardCount + cfg.MaxOxtailRounds
	if need > 52 {
		return &Error{Kind: KindValidation, Code: fmt.Sprintf("configuration needs %d cards, deck has 52", need)}
	}
	if cfg.TurnTimeout <= 0 {
		return &Error{Kind: KindValidation, Code: "turn timeout must be positive"}
	}
	return nil
}
