package logic

import (
	"errors"
	"slices"
	"sync"

	"eventdeck/internal/domain"
)

// ErrStoreLoaded is returned when a store that already holds a collection is loaded again
var ErrStoreLoaded = errors.New("event store already loaded")

// EventStore holds the fetched collection for the lifetime of one load.
// It is written once and only read afterwards.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
	loaded bool
}

// NewEventStore creates an empty store
func NewEventStore() *EventStore {
	return &EventStore{}
}

// Load stores the collection. A store accepts exactly one collection.
func (s *EventStore) Load(events []domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return ErrStoreLoaded
	}
	s.events = slices.Clone(events)
	if s.events == nil {
		s.events = []domain.Event{}
	}
	s.loaded = true
	return nil
}

// Loaded reports whether a collection has been stored
func (s *EventStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// All returns a copy of the collection in document order
func (s *EventStore) All() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	return slices.Clone(s.events)
}

// Len returns the number of stored events
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
