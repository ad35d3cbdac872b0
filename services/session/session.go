// Package session keeps the authenticated identity the browser would
// otherwise hold in local storage: the session token hash and the minimal
// user payload used for role gating. Nothing else is persisted client-side.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eventura/utils"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound indicates the token has no live session (expired or revoked).
var ErrNotFound = errors.New("session not found")

// Identity is the minimal user payload cached alongside the token.
type Identity struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Session is one live login.
type Session struct {
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists sessions keyed by token hash.
type Store interface {
	Save(ctx context.Context, token string, id Identity) error
	Get(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
}

// RedisStore is the production store.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore builds a store on the shared session cache client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func sessionKey(token string) string {
	return "session:" + utils.HashToken(token)
}

func (s *RedisStore) Save(ctx context.Context, token string, id Identity) error {
	sess := Session{Identity: id, CreatedAt: time.Now()}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKey(token), payload, s.TTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.Client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}
	// Sliding expiry: an active session stays alive.
	_ = s.Client.Expire(ctx, sessionKey(token), s.TTL).Err()
	return &sess, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}
