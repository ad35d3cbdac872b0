// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eventura/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for session storage.
	SessionCacheClient *redis.Client
	// ViewCacheClient is the client for last-known-good view snapshots.
	ViewCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitViewCache initializes the Redis client for view snapshot caching.
func InitViewCache() {
	ViewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisViewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ViewCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (View Cache): %v", err)
	}
}

// GetViewCacheClient returns the Redis client for view snapshot caching.
func GetViewCacheClient() *redis.Client {
	if ViewCacheClient == nil {
		InitViewCache()
	}
	return ViewCacheClient
}
