// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hopehealth/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient is the dedicated client for the admin session token store.
	SessionClient *redis.Client
	// DraftClient is the dedicated client for booking workflow drafts.
	DraftClient *redis.Client
)

// InitSessionStore initializes the Redis client backing the session token store.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionClient returns the Redis client for the session token store.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitDraftStore initializes the Redis client for booking workflow drafts.
func InitDraftStore() {
	DraftClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DraftClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Drafts): %v", err)
	}
}

// GetDraftClient returns the Redis client for booking workflow drafts.
func GetDraftClient() *redis.Client {
	if DraftClient == nil {
		InitDraftStore()
	}
	return DraftClient
}
