//go:build integration

package person_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"peopledir/internal/person/models"
	personstore "peopledir/internal/person/store/person"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/sentinel"
	"peopledir/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *personstore.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = personstore.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

// TestRoundTrip verifies a stored person comes back with identical fields.
func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	p, err := models.NewPerson(id.NewPersonID(), "Alice", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
	s.Require().NoError(err)

	s.Require().NoError(s.store.Add(ctx, p))

	found, err := s.store.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, found.ID)
	s.Equal("Alice", found.Name)
	s.True(p.BirthDate.Equal(found.BirthDate))
}

// TestNotFound verifies absent lookups return the sentinel.
func (s *RedisStoreSuite) TestNotFound() {
	_, err := s.store.FindByID(context.Background(), id.NewPersonID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

// TestDuplicateID verifies SETNX rejects a reused id.
func (s *RedisStoreSuite) TestDuplicateID() {
	ctx := context.Background()
	p, err := models.NewPerson(id.NewPersonID(), "Alice", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
	s.Require().NoError(err)

	s.Require().NoError(s.store.Add(ctx, p))

	dup := *p
	dup.Name = "Impostor"
	s.Require().ErrorIs(s.store.Add(ctx, &dup), sentinel.ErrConflict)
}

// TestList verifies full scans against the id index set.
func (s *RedisStoreSuite) TestList() {
	ctx := context.Background()

	persons, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Empty(persons)

	for i := 0; i < 3; i++ {
		p, err := models.NewPerson(id.NewPersonID(), "Alice", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
		s.Require().NoError(err)
		s.Require().NoError(s.store.Add(ctx, p))
	}

	persons, err = s.store.List(ctx)
	s.Require().NoError(err)
	s.Len(persons, 3)
}
