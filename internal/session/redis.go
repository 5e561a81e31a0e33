package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/assetdesk/assetdesk/internal/auth"
)

// RedisStore keeps the session record in redis under a fixed key.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore constructs a RedisStore. A zero ttl stores the record without
// expiry.
func NewRedisStore(client *redis.Client, key string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{client: client, key: key, ttl: ttl, logger: logger}
}

// Save serializes and persists the identity.
func (s *RedisStore) Save(ctx context.Context, identity auth.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session: encode identity: %w", err)
	}
	if err := s.client.Set(ctx, s.storageKey(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: persist identity: %w", err)
	}
	return nil
}

// Load deserializes the persisted identity. Missing and corrupt records both
// read back as nil; corrupt data is logged and removed.
func (s *RedisStore) Load(ctx context.Context) (*auth.Identity, error) {
	data, err := s.client.Get(ctx, s.storageKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read identity: %w", err)
	}

	var identity auth.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		s.logger.Warn("discarding corrupt session record", slog.Any("error", err))
		if err := s.client.Del(ctx, s.storageKey()).Err(); err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Warn("remove corrupt session record", slog.Any("error", err))
		}
		return nil, nil
	}
	return &identity, nil
}

// Clear removes the persisted entry.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.storageKey()).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("session: clear identity: %w", err)
	}
	return nil
}

func (s *RedisStore) storageKey() string {
	return "session:" + s.key
}

var _ Store = (*RedisStore)(nil)
