// Package person provides the persistence adapters for person records.
//
// All adapters implement the same capability contract:
//   - Add persists a fully-formed person and reports sentinel.ErrConflict
//     when the id already exists
//   - FindByID reports sentinel.ErrNotFound when no record matches
//   - List returns every record, empty slice when the store is empty
//
// Backend failures surface as errors wrapping sentinel.ErrUnavailable so
// services can classify them without knowing the backend.
package person

import (
	"context"
	"sync"

	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/sentinel"
)

// InMemory keeps persons in a map guarded by a RWMutex. It is the default
// backend and the workhorse of unit tests; it intentionally favors clarity
// over performance.
type InMemory struct {
	mu      sync.RWMutex
	persons map[id.PersonID]models.Person
}

// NewInMemory constructs an empty in-memory person store.
func NewInMemory() *InMemory {
	return &InMemory{persons: make(map[id.PersonID]models.Person)}
}

func (s *InMemory) Add(_ context.Context, p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.persons[p.ID]; exists {
		return sentinel.ErrConflict
	}
	s.persons[p.ID] = *p
	return nil
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.persons[personID]; ok {
		return &p, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		p := p
		out = append(out, &p)
	}
	return out, nil
}
