package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"eventura/config"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Upstream  bool      `json:"upstream"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// Healthy reports whether the upstream API and every Redis client answered
// the last probe.
func (s HealthStatus) Healthy() bool {
	if !s.Upstream {
		return false
	}
	for _, ok := range s.Redis {
		if !ok {
			return false
		}
	}
	return true
}

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the upstream API and the Redis clients on an
// interval and stores the latest snapshot.
func StartHealthMonitor(interval time.Duration, redisClients ...*redis.Client) {
	go func() {
		for {
			status := HealthStatus{CheckedAt: time.Now()}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.AppConfig.APIBaseURL+"/bookings", nil)
			if err == nil {
				resp, err := http.DefaultClient.Do(req)
				if err == nil {
					resp.Body.Close()
					status.Upstream = resp.StatusCode < http.StatusInternalServerError
				}
			}
			cancel()

			for _, client := range redisClients {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				_, err := client.Ping(ctx).Result()
				cancel()
				status.Redis = append(status.Redis, err == nil)
			}

			mu.Lock()
			currentHealth = status
			mu.Unlock()

			time.Sleep(interval)
		}
	}()
}
