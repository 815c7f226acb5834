// Package task models the lifecycle of a single asynchronous operation as an
// explicit three-state value: pending, succeeded with a value, or failed with
// a reason. Callers derive "is this action re-entrant" views from the state
// instead of keeping separate loading flags.
package task

import "sync"

// State is the observable phase of a task
type State int

// Task states
const (
	StatePending State = iota
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
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

// Task tracks one in-flight operation producing a T. Once resolved or failed
// it never changes state again; a retry is a new Task.
type Task[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	state State
	value T
	err   error
}

// Go starts fn in its own goroutine and returns the pending task. The task
// runs to completion; there is no cancellation beyond what fn itself observes.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		v, err := fn()
		t.mu.Lock()
		if err != nil {
			t.state = StateFailed
			t.err = err
		} else {
			t.state = StateSucceeded
			t.value = v
		}
		t.mu.Unlock()
		close(t.done)
	}()
	return t
}

// State returns the current phase
func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// InFlight reports whether the operation is still pending. UIs disable the
// initiating control while this is true.
func (t *Task[T]) InFlight() bool {
	return t.State() == StatePending
}

// Wait blocks until the task settles and returns its outcome
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.err
}

// Value returns the result and whether the task has succeeded
func (t *Task[T]) Value() (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.state == StateSucceeded
}

// Err returns the failure reason, or nil while pending or after success
func (t *Task[T]) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
