package statemachine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lamp struct {
	flips int
}

func stateOff(l *lamp) StateFn[lamp] { return stateOff }

func stateOn(l *lamp) StateFn[lamp] { return stateOn }

// stateFlip counts the toggle and settles on.
func stateFlip(l *lamp) StateFn[lamp] {
	l.flips++
	return stateOn
}

func stateBurnOut(l *lamp) StateFn[lamp] { return nil }

// sameState compares state functions by pointer identity, the only
// comparison Go allows for function values.
func sameState(a, b StateFn[lamp]) bool {
	return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
}

func TestDispatchRunsStateAndAdoptsResult(t *testing.T) {
	l := &lamp{}
	m := New(l, stateOff)
	require.True(t, sameState(stateOff, m.Current()))

	m.Dispatch(stateFlip)
	assert.Equal(t, 1, l.flips, "dispatch runs the state exactly once")
	assert.True(t, sameState(stateOn, m.Current()), "machine adopts the returned state")
}

func TestSetReplacesWithoutRunning(t *testing.T) {
	l := &lamp{}
	m := New(l, stateOff)

	m.Set(stateFlip)
	assert.Zero(t, l.flips, "set never runs the state")
	assert.True(t, sameState(stateFlip, m.Current()))

	m.Dispatch(m.Current())
	assert.Equal(t, 1, l.flips)
}

func TestNilTerminates(t *testing.T) {
	l := &lamp{}
	m := New(l, stateOn)

	m.Dispatch(stateBurnOut)
	require.Nil(t, m.Current(), "a state returning nil ends the machine")

	m.Dispatch(nil)
	assert.Nil(t, m.Current())
	assert.Zero(t, l.flips)
}
