// Package scoring compares submitted card combos against the boss's revealed
// cards and resolves the winner set through the house tie-break rules.
package scoring

import (
	"github.com/bullring/bossfight/pkg/cards"
)

// Tier labels which candidate pool the winners were drawn from.
type Tier string

const (
	// TierExact means at least one combo hit the boss total exactly; only
	// exact matches compete.
	TierExact Tier = "exact"
	// TierNonExact means no combo hit the boss total; all combos compete on
	// distance.
	TierNonExact Tier = "non_exact"
)

// Combo is one player's committed selection, ready for scoring.
type Combo struct {
	SeatIndex   int
	PlayerID    string
	DisplayName string
	Cards       []cards.Card
	// AcesAsEleven holds the card IDs of selected aces the owner chose to
	// count as eleven.
	AcesAsEleven map[string]bool
}

// Evaluation is the scored form of a combo.
type Evaluation struct {
	SeatIndex   int
	PlayerID    string
	DisplayName string
	Total       int
	CardCount   int
	SuitDist    int
	Exact       bool
	Diff        int
	Under       bool
}

// Result is the outcome of evaluating all combos against the boss.
type Result struct {
	Winners []Evaluation
	// Replay reports that more than one winner survived tie-break, which
	// triggers an extra boss card and another betting round.
	Replay    bool
	BossTotal int
	Tier      Tier
}

// Evaluate scores every combo against the boss's revealed cards. The boss
// total always counts aces low; each combo honors its own ace flags.
func Evaluate(bossCards []cards.Card, combos []Combo) Result {
	bossTotal := 0
	for _, c := range bossCards {
		bossTotal += cards.BossValue(c.Rank)
	}
	bossSuits := cards.SuitCounts(bossCards)

	evals := make([]Evaluation, 0, len(combos))
	for _, combo := range combos {
		total := 0
		for _, c := range combo.Cards {
			total += c.Rank.Value(combo.AcesAsEleven[c.ID])
		}
		diff := total - bossTotal
		if diff < 0 {
			diff = -diff
		}
		evals = append(evals, Evaluation{
			SeatIndex:   combo.SeatIndex,
			PlayerID:    combo.PlayerID,
			DisplayName: combo.DisplayName,
			Total:       total,
			CardCount:   len(combo.Cards),
			SuitDist:    suitSpreadDistance(combo.Cards, bossSuits),
			Exact:       total == bossTotal,
			Diff:        diff,
			Under:       total < bossTotal,
		})
	}

	exact := filterEvals(evals, func(ev Evaluation) bool { return ev.Exact })
	if len(exact) > 0 {
		winners := resolveExact(exact)
		return Result{
			Winners:   winners,
			Replay:    len(winners) > 1,
			BossTotal: bossTotal,
			Tier:      TierExact,
		}
	}

	winners := resolveNonExact(evals)
	return Result{
		Winners:   winners,
		Replay:    len(winners) > 1,
		BossTotal: bossTotal,
		Tier:      TierNonExact,
	}
}

// resolveExact breaks ties within the exact tier: fewest cards first, then
// smallest suit distance.
func resolveExact(evals []Evaluation) []Evaluation {
	if len(evals) <= 1 {
		return evals
	}
	contenders := keepMin(evals, func(ev Evaluation) int { return ev.CardCount })
	return keepMin(contenders, func(ev Evaluation) int { return ev.SuitDist })
}

// resolveNonExact breaks ties within the non-exact tier: smallest distance to
// the boss total first. If the survivors are a strict mix of under and over,
// only the under side stays. Remaining ties fall to suit distance.
func resolveNonExact(evals []Evaluation) []Evaluation {
	if len(evals) <= 1 {
		return evals
	}
	contenders := keepMin(evals, func(ev Evaluation) int { return ev.Diff })
	under := filterEvals(contenders, func(ev Evaluation) bool { return ev.Under })
	if len(under) > 0 && len(under) != len(contenders) {
		contenders = under
	}
	if len(contenders) <= 1 {
		return contenders
	}
	return keepMin(contenders, func(ev Evaluation) int { return ev.SuitDist })
}

// suitSpreadDistance sums, over the four suits, the absolute difference
// between the combo's suit counts and the boss's suit counts.
func suitSpreadDistance(cs []cards.Card, bossCounts map[cards.Suit]int) int {
	comboCounts := cards.SuitCounts(cs)
	dist := 0
	for _, suit := range cards.Suits {
		d := comboCounts[suit] - bossCounts[suit]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	return dist
}

func filterEvals(evals []Evaluation, keep func(Evaluation) bool) []Evaluation {
	out := make([]Evaluation, 0, len(evals))
	for _, ev := range evals {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func keepMin(evals []Evaluation, key func(Evaluation) int) []Evaluation {
	min := key(evals[0])
	for _, ev := range evals[1:] {
		if k := key(ev); k < min {
			min = k
		}
	}
	return filterEvals(evals, func(ev Evaluation) bool { return key(ev) == min })
}
