package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullring/bossfight/pkg/bossfight"
)

// newTimedTable seats two players and reports which seat holds the button.
// Heads-up the dealer posts the big blind and the other seat acts first.
func newTimedTable(t *testing.T, timeout time.Duration) (*bossfight.Table, []string, int) {
	t.Helper()
	cfg := bossfight.DefaultTableConfig("sched")
	cfg.Seed = 11
	cfg.TurnTimeout = timeout
	tbl, err := bossfight.NewTable(cfg)
	require.NoError(t, err)

	ids := []string{"p0", "p1"}
	for i, id := range ids {
		_, err := tbl.Join(id, id)
		require.NoError(t, err)
		require.NoError(t, tbl.TakeSeat(id, i))
	}
	dealer := tbl.PublicSnapshot().DealerSeat
	require.Contains(t, []int{0, 1}, dealer)
	return tbl, ids, dealer
}

func TestTimeoutFoldsActingSeat(t *testing.T) {
	tbl, ps, d := newTimedTable(t, 50*time.Millisecond)
	require.NoError(t, tbl.StartHand(ps[d]))

	var fired atomic.Int32
	sched := NewTurnScheduler(tbl, nil, func() { fired.Add(1) })
	defer sched.Stop()
	sched.Sync()

	// The small blind never acts: their timeout folds them and the dealer
	// collects the blinds.
	require.Eventually(t, func() bool {
		return tbl.Phase() == bossfight.PhaseHandEnd
	}, 2*time.Second, 10*time.Millisecond)

	snap := tbl.PublicSnapshot()
	assert.Equal(t, int64(50025), snap.Seats[d].Bankroll)
	assert.Equal(t, int64(49975), snap.Seats[1-d].Bankroll)
	assert.GreaterOrEqual(t, fired.Load(), int32(1))
}

func TestActionSupersedesTimer(t *testing.T) {
	tbl, ps, d := newTimedTable(t, 150*time.Millisecond)
	require.NoError(t, tbl.StartHand(ps[d]))

	sched := NewTurnScheduler(tbl, nil, nil)
	defer sched.Stop()
	sched.Sync()

	// The small blind acts in time, so the armed timer must not fold them;
	// the scheduler then times out the dealer instead.
	require.NoError(t, tbl.BetAction(ps[1-d], bossfight.BetCall))
	sched.Sync()

	require.Eventually(t, func() bool {
		return tbl.Phase() == bossfight.PhaseHandEnd
	}, 2*time.Second, 10*time.Millisecond)

	snap := tbl.PublicSnapshot()
	assert.Equal(t, int64(50100), snap.Seats[1-d].Bankroll, "caller takes the pot")
	assert.Equal(t, int64(49900), snap.Seats[d].Bankroll)
}

func TestRevealTimeoutBowsOut(t *testing.T) {
	tbl, ps, d := newTimedTable(t, 60*time.Millisecond)
	require.NoError(t, tbl.StartHand(ps[d]))

	// Play to the reveal phase without arming the scheduler.
	require.NoError(t, tbl.BetAction(ps[1-d], bossfight.BetCall))
	require.NoError(t, tbl.BetAction(ps[d], bossfight.BetCheck))
	for i := 0; i < 2; i++ {
		require.NoError(t, tbl.BetAction(ps[1-d], bossfight.BetCheck))
		require.NoError(t, tbl.BetAction(ps[d], bossfight.BetCheck))
	}
	require.Equal(t, bossfight.PhaseReveal, tbl.Phase())

	sched := NewTurnScheduler(tbl, nil, nil)
	defer sched.Stop()
	sched.Sync()

	// Both reveal turns expire in sequence; with every seat bowed out the
	// hand ends with no payout.
	require.Eventually(t, func() bool {
		return tbl.Phase() == bossfight.PhaseHandEnd
	}, 2*time.Second, 10*time.Millisecond)

	snap := tbl.PublicSnapshot()
	assert.Equal(t, int64(49900), snap.Seats[0].Bankroll)
	assert.Equal(t, int64(49900), snap.Seats[1].Bankroll)
}

func TestSyncWithNoActingSeat(t *testing.T) {
	tbl, _, _ := newTimedTable(t, 50*time.Millisecond)

	sched := NewTurnScheduler(tbl, nil, nil)
	defer sched.Stop()

	// Nothing to arm before a hand starts; repeated syncs are harmless.
	sched.Sync()
	sched.Sync()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, bossfight.PhaseWaiting, tbl.Phase())
}
