package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const contextKeyPrefix = "chat_context:"

// ContextStore persists booking contexts between turns, keyed by session.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*BookingContext, error)
	Set(ctx context.Context, sessionID string, bc *BookingContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore keeps contexts in Redis with a sliding TTL, so an
// abandoned conversation expires on its own and the next message from that
// session starts fresh.
type RedisContextStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisContextStore{Client: client, TTL: ttl}
}

// Get loads the session's context. A missing key is not an error: the caller
// gets a fresh idle context.
func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*BookingContext, error) {
	data, err := s.Client.Get(ctx, contextKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return NewBookingContext(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat context: %w", err)
	}
	var bc BookingContext
	if err := json.Unmarshal([]byte(data), &bc); err != nil {
		// A corrupt context should not strand the session.
		return NewBookingContext(), nil
	}
	return &bc, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, bc *BookingContext) error {
	data, err := json.Marshal(bc)
	if err != nil {
		return fmt.Errorf("failed to marshal chat context: %w", err)
	}
	if err := s.Client.Set(ctx, contextKeyPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store chat context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, contextKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear chat context: %w", err)
	}
	return nil
}
