package app

import "sync"

type Dispatcher interface {
	Dispatch(a Action)
}

// Store is the single state container of a view. Dispatch calls are
// applied one at a time, in call order.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore(initial State) *Store { return &Store{state: initial} }

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

// Snapshot returns the current state. Its collections must not be modified.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
