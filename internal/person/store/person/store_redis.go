package person

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"peopledir/internal/person/models"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/sentinel"
)

const (
	// Redis key prefix for person records
	personKeyPrefix = "person:"
	// Index set holding every person id, scanned by List
	personIndexKey = "person:ids"
)

// RedisStore persists persons in Redis: one JSON value per record plus an id
// set for full scans. SETNX keeps Add atomic so a duplicate id is rejected by
// the backend, not by a read-then-write race.
type RedisStore struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed person store.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Add(ctx context.Context, p *models.Person) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal person: %w", err)
	}

	key := personKeyPrefix + p.ID.String()
	set, err := s.client.SetNX(ctx, key, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("add person: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	if !set {
		return fmt.Errorf("add person: %w", sentinel.ErrConflict)
	}

	if err := s.client.SAdd(ctx, personIndexKey, p.ID.String()).Err(); err != nil {
		return fmt.Errorf("index person: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	payload, err := s.client.Get(ctx, personKeyPrefix+personID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find person: %w", errors.Join(sentinel.ErrUnavailable, err))
	}

	var p models.Person
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("unmarshal person: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) List(ctx context.Context) ([]*models.Person, error) {
	ids, err := s.client.SMembers(ctx, personIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", errors.Join(sentinel.ErrUnavailable, err))
	}

	persons := make([]*models.Person, 0, len(ids))
	for _, rawID := range ids {
		payload, err := s.client.Get(ctx, personKeyPrefix+rawID).Bytes()
		if errors.Is(err, redis.Nil) {
			// Index entry without a record; skip rather than fail the scan.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list persons: %w", errors.Join(sentinel.ErrUnavailable, err))
		}
		var p models.Person
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal person: %w", err)
		}
		persons = append(persons, &p)
	}
	return persons, nil
}
