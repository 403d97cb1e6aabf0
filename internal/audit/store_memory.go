package audit

import (
	"context"
	"sync"

	id "peopledir/pkg/domain"
)

// InMemoryStore keeps the audit trail in process memory, indexed by person.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.PersonID][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.PersonID][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.PersonID] = append(s.events[event.PersonID], event)
	return nil
}

func (s *InMemoryStore) ListByPerson(_ context.Context, personID id.PersonID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[personID]...), nil
}
