// Package optimistic implements the apply-locally-then-confirm mutation
// pattern used by the admin views: a mutation is applied to local list state
// immediately, the server call runs afterwards, and on failure the
// pre-mutation snapshot is restored verbatim.
//
// The pattern is modelled as an explicit state transition per mutation
// (Idle → Mutating → Committed | RolledBack) rather than ad hoc flag
// toggling, so rollback correctness is testable without any network mocking.
package optimistic

import (
	"context"
	"sync"
)

// State is the lifecycle state of the most recent mutation.
type State int

const (
	Idle State = iota
	Mutating
	Committed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Mutating:
		return "mutating"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// Notifier receives the user-facing outcome of a mutation. Implementations
// surface these as transient notifications (toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Store holds a list of records and applies mutations to it optimistically.
//
// The store does not queue or coalesce overlapping mutations: a second
// mutation started before the first confirms may race, and the later
// confirmation wins (last-write-wins on local state). Snapshot and restore
// are atomic with respect to readers.
type Store[T any] struct {
	mu       sync.Mutex
	items    []T
	state    State
	notifier Notifier
}

// NewStore creates a Store seeded with items. A nil notifier discards
// notifications.
func NewStore[T any](items []T, notifier Notifier) *Store[T] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Store[T]{items: cloneSlice(items), state: Idle, notifier: notifier}
}

// Items returns a copy of the current list state.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.items)
}

// State returns the lifecycle state of the most recent mutation.
func (s *Store[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Replace swaps the whole list, e.g. after a fresh fetch from the server.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneSlice(items)
	s.state = Idle
}

// Mutate applies apply to the local list immediately, then runs call. On
// success the optimistic state stays in place and successMsg is surfaced. On
// failure the pre-mutation snapshot is restored verbatim and the failure
// reason is surfaced. The call's error is returned either way.
func (s *Store[T]) Mutate(ctx context.Context, apply func([]T) []T, call func(context.Context) error, successMsg string) error {
	s.mu.Lock()
	snapshot := cloneSlice(s.items)
	s.items = apply(cloneSlice(s.items))
	s.state = Mutating
	s.mu.Unlock()

	if err := call(ctx); err != nil {
		s.mu.Lock()
		s.items = snapshot
		s.state = RolledBack
		s.mu.Unlock()
		s.notifier.Error(err.Error())
		return err
	}

	s.mu.Lock()
	s.state = Committed
	s.mu.Unlock()
	s.notifier.Success(successMsg)
	return nil
}

// RemoveWhere builds an apply function that drops every item matching match.
func RemoveWhere[T any](match func(T) bool) func([]T) []T {
	return func(items []T) []T {
		kept := items[:0]
		for _, it := range items {
			if !match(it) {
				kept = append(kept, it)
			}
		}
		return kept
	}
}

// UpdateWhere builds an apply function that replaces every item matching
// match with update(item).
func UpdateWhere[T any](match func(T) bool, update func(T) T) func([]T) []T {
	return func(items []T) []T {
		for i, it := range items {
			if match(it) {
				items[i] = update(it)
			}
		}
		return items
	}
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
