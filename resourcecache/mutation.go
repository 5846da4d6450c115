package resourcecache

import (
	"context"
	"sync"
)

// MutationState is the observable lifecycle of a mutation: idle until first
// invoked, pending while in flight, then succeeded or failed. It returns to
// idle only through Reset or a new invocation.
type MutationState int

const (
	StateIdle MutationState = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s MutationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation tracks a single mutation's lifecycle for UI layers that render
// in-flight state. Concurrent invocations are not serialized; the outcome
// observed last wins, mirroring the cache layer's last-write-wins policy.
type Mutation[In, Out any] struct {
	run func(ctx context.Context, in In) (Out, error)

	mu     sync.Mutex
	state  MutationState
	result Out
	err    error
}

// NewMutation wraps run with lifecycle tracking.
func NewMutation[In, Out any](run func(ctx context.Context, in In) (Out, error)) *Mutation[In, Out] {
	return &Mutation[In, Out]{run: run}
}

// Do executes the mutation. The state moves to pending for the duration of
// the call and settles on succeeded or failed with the outcome retained for
// State/Result/Err.
func (m *Mutation[In, Out]) Do(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	m.state = StatePending
	m.err = nil
	var zero Out
	m.result = zero
	m.mu.Unlock()

	result, err := m.run(ctx, in)

	m.mu.Lock()
	if err != nil {
		m.state = StateFailed
		m.err = err
	} else {
		m.state = StateSucceeded
		m.result = result
	}
	m.mu.Unlock()

	return result, err
}

// State returns the current lifecycle state.
func (m *Mutation[In, Out]) State() MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Result returns the outcome of the last successful invocation.
func (m *Mutation[In, Out]) Result() Out {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Err returns the error of the last failed invocation.
func (m *Mutation[In, Out]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Reset returns the mutation to idle and clears the retained outcome.
func (m *Mutation[In, Out]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateIdle
	m.err = nil
	var zero Out
	m.result = zero
}
