package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore persists sessions in redis, one JSON value per session under
// "session:<id>", refreshed with the configured TTL on every save.
type RedisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := s.rdb.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) key(id string) string {
	return "session:" + id
}
