package bossfight

import (
	"time"

	"github.com/thoas/go-funk"

	"github.com/bullring/bossfight/pkg/cards"
)

// ComboSelection is a player's working pick of cards from their dealt hand,
// plus the aces within it they want counted as eleven. Both lists hold card
// IDs.
type ComboSelection struct {
	CardIDs      []string `json:"card_ids"`
	AcesAsEleven []string `json:"aces_as_eleven"`
}

// Player is a roster entry. A player may be present without holding a seat;
// only seated players take part in hands.
type Player struct {
	ID          string
	DisplayName string
	Bankroll    int64

	// SeatIndex is -1 while the player is unseated.
	SeatIndex int

	Hand      []cards.Card
	Selection ComboSelection
	Submitted *ComboSelection

	JoinedAt time.Time
}

// filterSelection drops card IDs the player was never dealt and ace flags
// that do not point at a selected ace. Unknown IDs are silently ignored so a
// stale client can never wedge a submission.
func (p *Player) filterSelection(sel ComboSelection) ComboSelection {
	handIDs := funk.Map(p.Hand, func(c cards.Card) string { return c.ID }).([]string)

	out := ComboSelection{}
	for _, id := range sel.CardIDs {
		if funk.Contains(handIDs, id) && !funk.Contains(out.CardIDs, id) {
			out.CardIDs = append(out.CardIDs, id)
		}
	}
	for _, id := range sel.AcesAsEleven {
		if !funk.Contains(out.CardIDs, id) || funk.Contains(out.AcesAsEleven, id) {
			continue
		}
		for _, c := range p.Hand {
			if c.ID == id && c.Rank == cards.Ace {
				out.AcesAsEleven = append(out.AcesAsEleven, id)
				break
			}
		}
	}
	return out
}

// selectedCards resolves a selection back into the concrete cards, preserving
// selection order.
func (p *Player) selectedCards(sel ComboSelection) []cards.Card {
	out := make([]cards.Card, 0, len(sel.CardIDs))
	for _, id := range sel.CardIDs {
		for _, c := range p.Hand {
			if c.ID == id {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (s ComboSelection) clone() ComboSelection {
	out := ComboSelection{}
	out.CardIDs = append(out.CardIDs, s.CardIDs...)
	out.AcesAsEleven = append(out.AcesAsEleven, s.AcesAsEleven...)
	return out
}
