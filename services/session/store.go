// File: services/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	"hopehealth/models"

	"github.com/go-redis/redis/v8"
)

// Fixed keys of the persisted session state.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
	loggedUserKey   = "loggedUser"
)

// TokenStore persists the session token pair and display identity across
// process restarts. AccessToken also satisfies clients.TokenSource, so the
// backend clients read their bearer token straight from the store.
type TokenStore interface {
	AccessToken() string
	RefreshToken() string
	LoggedUser() string
	SaveTokens(pair models.TokenPair) error
	SaveIdentity(loggedUser string) error
	Clear() error
}

// RedisTokenStore is the redis-backed TokenStore used in production.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore returns a TokenStore backed by the given redis client.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) readKey(key string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return value
}

func (s *RedisTokenStore) AccessToken() string {
	return s.readKey(accessTokenKey)
}

func (s *RedisTokenStore) RefreshToken() string {
	return s.readKey(refreshTokenKey)
}

func (s *RedisTokenStore) LoggedUser() string {
	return s.readKey(loggedUserKey)
}

func (s *RedisTokenStore) SaveTokens(pair models.TokenPair) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, accessTokenKey, pair.AccessToken, 0).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, refreshTokenKey, pair.RefreshToken, 0).Err()
}

func (s *RedisTokenStore) SaveIdentity(loggedUser string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Set(ctx, loggedUserKey, loggedUser, 0).Err()
}

func (s *RedisTokenStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Del(ctx, accessTokenKey, refreshTokenKey, loggedUserKey).Err()
}

// MemoryTokenStore is an in-memory TokenStore for tests.
type MemoryTokenStore struct {
	mu         sync.RWMutex
	access     string
	refresh    string
	loggedUser string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *MemoryTokenStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *MemoryTokenStore) LoggedUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedUser
}

func (s *MemoryTokenStore) SaveTokens(pair models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = pair.AccessToken
	s.refresh = pair.RefreshToken
	return nil
}

func (s *MemoryTokenStore) SaveIdentity(loggedUser string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedUser = loggedUser
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.loggedUser = ""
	return nil
}
