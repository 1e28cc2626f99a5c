// Package store is the per-grid state container.
//
// A Store holds the current State and replaces it through Set. Listeners
// registered with Subscribe are told when the host should re-render, either
// because Set installed a new state or because a feature forced an update.
package store

import "sync"

// Store holds one grid's state.
type Store struct {
	mu        sync.RWMutex
	state     *State
	updates   uint64
	listeners map[int]func(*State)
	nextID    int
}

// New creates a store with the given initial state.
func New(initial State) *Store {
	return &Store{state: &initial, listeners: map[int]func(*State){}}
}

// Get returns the current state. The result must not be modified.
func (s *Store) Get() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set installs the state returned by fn. fn receives a copy of the current
// state and must replace, not mutate, any slice or map it changes.
func (s *Store) Set(fn func(State) State) *State {
	s.mu.Lock()
	next := fn(*s.state)
	s.state = &next
	s.mu.Unlock()
	return &next
}

// ForceUpdate tells listeners to re-render.
func (s *Store) ForceUpdate() {
	s.mu.Lock()
	s.updates++
	state := s.state
	listeners := make([]func(*State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// Updates returns how many times ForceUpdate ran.
func (s *Store) Updates() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updates
}

// Subscribe registers fn for forced updates and returns its cancel func.
func (s *Store) Subscribe(fn func(*State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
