package person

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newPerson(name string) *models.Person {
	p, err := models.NewPerson(id.NewPersonID(), name, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
	s.Require().NoError(err)
	return p
}

// TestAddAndFind verifies the store correctly persists and retrieves persons.
func (s *MemoryStoreSuite) TestAddAndFind() {
	s.Run("adds and finds person by ID", func() {
		p := s.newPerson("Alice")
		s.Require().NoError(s.store.Add(s.ctx, p))

		found, err := s.store.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(p.Name, found.Name)
		s.Equal(p.BirthDate, found.BirthDate)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, id.NewPersonID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestDuplicateID verifies the store rejects a second add with the same id.
func (s *MemoryStoreSuite) TestDuplicateID() {
	p := s.newPerson("Alice")
	s.Require().NoError(s.store.Add(s.ctx, p))

	dup := *p
	dup.Name = "Impostor"
	err := s.store.Add(s.ctx, &dup)
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	// Original record is untouched
	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Alice", found.Name)
}

// TestList verifies full scans.
func (s *MemoryStoreSuite) TestList() {
	s.Run("empty store returns empty slice", func() {
		persons, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.NotNil(persons)
		s.Empty(persons)
	})

	s.Run("returns every stored record", func() {
		p1 := s.newPerson("Alice")
		p2 := s.newPerson("Alice") // identical fields, distinct identity
		s.Require().NoError(s.store.Add(s.ctx, p1))
		s.Require().NoError(s.store.Add(s.ctx, p2))

		persons, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Len(persons, 2)
		s.NotEqual(persons[0].ID, persons[1].ID)
	})
}

// TestReturnedRecordsAreCopies verifies callers cannot mutate stored state.
func (s *MemoryStoreSuite) TestReturnedRecordsAreCopies() {
	p := s.newPerson("Alice")
	s.Require().NoError(s.store.Add(s.ctx, p))

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	found.Name = "Mutated"

	again, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Alice", again.Name)
}

// TestConcurrentAdds verifies the store is safe under concurrent writers.
func (s *MemoryStoreSuite) TestConcurrentAdds() {
	const goroutines = 50

	persons := make([]*models.Person, goroutines)
	for i := range persons {
		persons[i] = s.newPerson("Concurrent")
	}

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(p *models.Person) {
			defer wg.Done()
			if err := s.store.Add(s.ctx, p); err != nil {
				failures.Add(1)
			}
		}(persons[i])
	}
	wg.Wait()
	s.Zero(failures.Load())

	persons, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(persons, goroutines)
}
