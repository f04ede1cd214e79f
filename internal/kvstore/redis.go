package kvstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Sessions that go untouched for this long are dropped by Redis. Matches the
// session cookie lifetime.
const sessionTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool) {
	v, err := s.client.Get(ctx, s.prefix+":"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("kvstore redis load failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return v, true
}

func (s *RedisStore) Save(ctx context.Context, key string, value []byte) {
	if err := s.client.Set(ctx, s.prefix+":"+key, value, sessionTTL).Err(); err != nil {
		// Non-fatal: the in-memory state stays correct for this request,
		// it just will not survive until the next one.
		zap.L().Warn("kvstore redis save failed", zap.String("key", key), zap.Error(err))
	}
}

type RedisFactory struct {
	client *redis.Client
}

func NewRedisFactory(client *redis.Client) *RedisFactory {
	return &RedisFactory{client: client}
}

func (f *RedisFactory) ForSession(sessionID string) Store {
	return NewRedis(f.client, "session:"+sessionID)
}
