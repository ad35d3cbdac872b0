package booking

import (
	"context"
	"encoding/json"
	"time"

	"eventura/models"

	"github.com/go-redis/redis/v8"
)

// AdminScope is the snapshot key for the administrator booking list.
const AdminScope = "admin"

// SnapshotStore keeps the last-known-good booking list per view scope. The
// status command applies its optimistic update here and rolls it back from
// the authoritative list on failure.
type SnapshotStore interface {
	Save(ctx context.Context, scope string, bookings []models.Booking) error
	Load(ctx context.Context, scope string) ([]models.Booking, error)
}

// RedisSnapshotStore is the production store.
type RedisSnapshotStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client, TTL: ttl}
}

func snapshotKey(scope string) string {
	return "bookings:" + scope
}

func (s *RedisSnapshotStore) Save(ctx context.Context, scope string, bookings []models.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, snapshotKey(scope), payload, s.TTL).Err()
}

func (s *RedisSnapshotStore) Load(ctx context.Context, scope string) ([]models.Booking, error) {
	payload, err := s.Client.Get(ctx, snapshotKey(scope)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(payload), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
