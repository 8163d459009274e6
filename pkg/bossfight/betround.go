package bossfight

// BettingRound tags which of the hand's betting rounds is open.
type BettingRound string

const (
	RoundRush   BettingRound = "rush"
	RoundCharge BettingRound = "charge"
	RoundStomp  BettingRound = "stomp"
	RoundOxtail BettingRound = "oxtail"
)

// BetAction is a player's move when the action is on them during a betting
// round.
type BetAction string

const (
	BetFold  BetAction = "fold"
	BetCheck BetAction = "check"
	BetCall  BetAction = "call"
	BetRaise BetAction = "raise"
	BetAllIn BetAction = "all_in"
)

// ActionKind says what the acting seat is expected to do: place a bet action
// or resolve their reveal turn.
type ActionKind string

const (
	ActionBet    ActionKind = "bet"
	ActionReveal ActionKind = "reveal"
)

// betRoundState is the live state of one betting round. turnSequence fixes
// the clockwise acting order for the whole round; pending is the set of
// seats still owed an action, rebuilt from scratch whenever a raise reopens
// the round.
type betRoundState struct {
	round      BettingRound
	currentBet int64
	raisesUsed int

	turnSequence []int
	cursor       int

	pending map[int]struct{}

	// lastAggressor is the seat of the most recent raise, -1 when the round
	// has seen none.
	lastAggressor int
}

func newBetRoundState(round BettingRound, openingBet int64, sequence []int) *betRoundState {
	st := &betRoundState{
		round:         round,
		currentBet:    openingBet,
		turnSequence:  sequence,
		cursor:        -1,
		pending:       make(map[int]struct{}, len(sequence)),
		lastAggressor: -1,
	}
	for _, seat := range sequence {
		st.pending[seat] = struct{}{}
	}
	return st
}

func (st *betRoundState) isPending(seat int) bool {
	_, ok := st.pending[seat]
	return ok
}

func (st *betRoundState) dropPending(seat int) {
	delete(st.pending, seat)
}

// reopen replaces the pending set with every seat in seats except the
// aggressor. Called after a raise or an all-in that lifted the current bet.
func (st *betRoundState) reopen(aggressor int, seats []int) {
	next := make(map[int]struct{}, len(seats))
	for _, seat := range seats {
		if seat == aggressor {
			continue
		}
		next[seat] = struct{}{}
	}
	st.pending = next
}
