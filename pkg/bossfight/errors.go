package bossfight

// ErrorKind classifies why a command was rejected.
type ErrorKind string

const (
	// KindValidation marks malformed or out-of-range command shapes.
	KindValidation ErrorKind = "validation"
	// KindState marks operations that are illegal for the current phase or
	// turn.
	KindState ErrorKind = "state"
	// KindResource marks references to seats or players that do not exist or
	// are already taken.
	KindResource ErrorKind = "resource"
)

// Error is a rejected command. Rejections never corrupt table state; the
// table stays fully usable after any of them. Code is a stable identifier
// suitable for translation into user-facing errors by the transport layer.
type Error struct {
	Kind ErrorKind
	Code string
}

func (e *Error) Error() string { return e.Code }

var (
	ErrPlayerNotFound = &Error{Kind: KindResource, Code: "player_not_found"}
	ErrSeatNotFound   = &Error{Kind: KindResource, Code: "seat_not_found"}
	ErrSeatTaken      = &Error{Kind: KindResource, Code: "seat_taken"}
	ErrAlreadySeated  = &Error{Kind: KindResource, Code: "already_seated"}

	ErrNotSeated       = &Error{Kind: KindState, Code: "not_seated"}
	ErrHandInProgress  = &Error{Kind: KindState, Code: "hand_in_progress"}
	ErrNeedTwoPlayers  = &Error{Kind: KindState, Code: "need_two_players"}
	ErrOnlyDealerStart = &Error{Kind: KindState, Code: "only_dealer_starts"}
	ErrNoBetRound      = &Error{Kind: KindState, Code: "no_bet_round"}
	ErrNotYourTurn     = &Error{Kind: KindState, Code: "not_your_turn"}
	ErrNotInHand       = &Error{Kind: KindState, Code: "not_in_hand"}
	ErrCannotCheck     = &Error{Kind: KindState, Code: "cannot_check"}
	ErrRaiseCap        = &Error{Kind: KindState, Code: "raise_cap"}
	ErrNoStack         = &Error{Kind: KindState, Code: "no_stack"}
	ErrNotRevealPhase  = &Error{Kind: KindState, Code: "not_reveal_phase"}

	ErrUnknownAction = &Error{Kind: KindValidation, Code: "unknown_action"}
)
