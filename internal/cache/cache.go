package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JesusPQ15/Transcription-page/internal/errors"
)

const keyPrefix = "transcriptor:text:"

// Store keeps transcription results by key
type Store interface {
	// Get returns errors.ErrCacheMiss when key is absent
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

// Key derives the cache key for audio transcribed by engine
func Key(engine string, data []byte) string {
	hash := sha256.New()
	hash.Write([]byte(engine))
	hash.Write([]byte{0})
	hash.Write(data)
	return keyPrefix + hex.EncodeToString(hash.Sum(nil))
}

// RedisStore is a Store backed by redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server at url (redis://host:port/db)
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the cached value for key
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", errors.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get failed")
	}
	return value, nil
}

// Set stores value under key for ttl
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}
	return nil
}

// Close closes the redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
