package bossfight

import (
	"fmt"

	"github.com/bullring/bossfight/pkg/statemachine"
)

// HandPhase names the table's position in the hand lifecycle.
type HandPhase string

const (
	PhaseWaiting HandPhase = "waiting"
	PhaseBlinds  HandPhase = "blinds"
	PhaseRush    HandPhase = "rush"
	PhaseCharge  HandPhase = "charge"
	PhaseStomp   HandPhase = "stomp"
	PhaseReveal  HandPhase = "reveal"
	PhaseOxtail  HandPhase = "oxtail"
	PhaseHandEnd HandPhase = "hand_end"
)

type tableStateFn = statemachine.StateFn[Table]

// Phase state functions. Each is a resting state: it logs entry and returns
// itself, and transitions happen when command handlers dispatch the next
// state.

func stateWaiting(t *Table) tableStateFn {
	t.log.Debugf("table %s: waiting for players", t.cfg.ID)
	return stateWaiting
}

func stateBlinds(t *Table) tableStateFn {
	t.log.Debugf("table %s: posting blinds for hand %d", t.cfg.ID, t.hand.handNumber)
	return stateBlinds
}

func stateRush(t *Table) tableStateFn {
	t.log.Debugf("table %s: rush round open", t.cfg.ID)
	return stateRush
}

func stateCharge(t *Table) tableStateFn {
	t.log.Debugf("table %s: charge round open", t.cfg.ID)
	return stateCharge
}

func stateStomp(t *Table) tableStateFn {
	t.log.Debugf("table %s: stomp round open", t.cfg.ID)
	return stateStomp
}

func stateReveal(t *Table) tableStateFn {
	t.log.Debugf("table %s: reveal phase open", t.cfg.ID)
	return stateReveal
}

func stateOxtail(t *Table) tableStateFn {
	t.log.Debugf("table %s: oxtail round %d open", t.cfg.ID, t.hand.oxtailRound)
	return stateOxtail
}

func stateHandEnd(t *Table) tableStateFn {
	t.log.Debugf("table %s: hand %d complete", t.cfg.ID, t.hand.handNumber)
	return stateHandEnd
}

var phaseStateFns = map[HandPhase]tableStateFn{
	PhaseWaiting: stateWaiting,
	PhaseBlinds:  stateBlinds,
	PhaseRush:    stateRush,
	PhaseCharge:  stateCharge,
	PhaseStomp:   stateStomp,
	PhaseReveal:  stateReveal,
	PhaseOxtail:  stateOxtail,
	PhaseHandEnd: stateHandEnd,
}

func (t *Table) setPhase(p HandPhase) {
	t.sm.Dispatch(phaseStateFns[p])
}

// phase maps the machine's current state function back to its name. Function
// values cannot be compared directly, so this matches on pointer identity the
// same way the state functions were registered.
func (t *Table) phase() HandPhase {
	cur := fmt.Sprintf("%p", t.sm.Current())
	for name, fn := range phaseStateFns {
		if fmt.Sprintf("%p", fn) == cur {
			return name
		}
	}
	return PhaseWaiting
}
