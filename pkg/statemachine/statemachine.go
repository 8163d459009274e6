// Package statemachine provides a small state-function machine following
// Rob Pike's pattern: states are functions over the owning entity, and each
// returns the next state function (or nil to terminate).
package statemachine

import (
	"sync"
)

// StateFn is a state function over an entity of type T.
type StateFn[T any] func(*T) StateFn[T]

// Machine tracks the current state function for one entity. It is safe for
// concurrent use.
type Machine[T any] struct {
	entity  *T
	stateFn StateFn[T]
	mu      sync.RWMutex
}

// New creates a machine for entity starting in the given state.
func New[T any](entity *T, initial StateFn[T]) *Machine[T] {
	return &Machine[T]{
		entity:  entity,
		stateFn: initial,
	}
}

// Dispatch transitions to stateFn, runs it once, and adopts whatever state it
// returns. A nil stateFn terminates the machine.
func (m *Machine[T]) Dispatch(stateFn StateFn[T]) {
	m.mu.Lock()
	m.stateFn = stateFn
	m.mu.Unlock()

	if stateFn == nil {
		return
	}
	next := stateFn(m.entity)

	m.mu.Lock()
	m.stateFn = next
	m.mu.Unlock()
}

// Set replaces the current state without running it.
func (m *Machine[T]) Set(stateFn StateFn[T]) {
	m.mu.Lock()
	m.stateFn = stateFn
	m.mu.Unlock()
}

// Current returns the current state function, or nil once terminated.
func (m *Machine[T]) Current() StateFn[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateFn
}
