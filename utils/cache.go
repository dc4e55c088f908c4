// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tropicab/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (catalog snapshots etc.).
	CacheClient *redis.Client
	// ChatContextClient is the dedicated client for conversation contexts.
	ChatContextClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatContextCache initializes the Redis client holding per-session
// booking contexts.
func InitChatContextCache() {
	ChatContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Context): %v", err)
	}
}

// GetChatContextClient returns the Redis client for conversation contexts.
func GetChatContextClient() *redis.Client {
	if ChatContextClient == nil {
		InitChatContextCache()
	}
	return ChatContextClient
}
