package payment

import (
	"context"
	"encoding/json"
	"time"

	"eventura/models"

	"github.com/go-redis/redis/v8"
)

// PendingOrder ties a gateway order to the booking and amount it was opened
// for, held until the checkout callback arrives.
type PendingOrder struct {
	OrderID   string               `json:"orderId"`
	BookingID int                  `json:"bookingId"`
	Email     string               `json:"email"`
	Option    models.PaymentOption `json:"option"`
	Amount    float64              `json:"amount"`
	CreatedAt time.Time            `json:"createdAt"`
}

// OrderStore holds pending gateway orders until they are confirmed or expire.
type OrderStore interface {
	Save(ctx context.Context, order PendingOrder) error
	Get(ctx context.Context, orderID string) (*PendingOrder, error)
	Delete(ctx context.Context, orderID string) error
}

// RedisOrderStore is the production store.
type RedisOrderStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisOrderStore(client *redis.Client, ttl time.Duration) *RedisOrderStore {
	return &RedisOrderStore{Client: client, TTL: ttl}
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

func (s *RedisOrderStore) Save(ctx context.Context, order PendingOrder) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, orderKey(order.OrderID), payload, s.TTL).Err()
}

func (s *RedisOrderStore) Get(ctx context.Context, orderID string) (*PendingOrder, error) {
	payload, err := s.Client.Get(ctx, orderKey(orderID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var order PendingOrder
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *RedisOrderStore) Delete(ctx context.Context, orderID string) error {
	return s.Client.Del(ctx, orderKey(orderID)).Err()
}
