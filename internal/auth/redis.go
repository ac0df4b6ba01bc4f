package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "cercle:session:"
	redisOpTimeout  = 5 * time.Second
	redisDefaultKey = "default"
)

// RedisStore is a Store which keeps the session in a Redis hash
//
// Every session slot is a field of the same hash, so Update (HSET/HDEL in a
// MULTI block) and Clear (DEL) are atomic on the server. Command errors
// are retained and reported by the next call to Save
type RedisStore struct {
	client redis.UniversalClient
	key    string

	mu  sync.Mutex
	err error
}

// NewRedisStore creates a new session store backed by the provided Redis client
// The name scopes the session, e.g. to a CLI profile
func NewRedisStore(client redis.UniversalClient, name string) *RedisStore {
	if name == "" {
		name = redisDefaultKey
	}
	return &RedisStore{client: client, key: redisKeyPrefix + name}
}

// NewRedisStoreFromURL creates a new session store connected to the Redis server at url
func NewRedisStoreFromURL(url, name string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisStore(redis.NewClient(opts), name), nil
}

// Key returns the Redis key holding the session
func (s *RedisStore) Key() string { return s.key }

// Get returns the stored value for key
func (s *RedisStore) Get(key string) string {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	value, err := s.client.HGet(ctx, s.key, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.record(err)
		}
		return ""
	}
	return value
}

// Set stores the value for key
func (s *RedisStore) Set(key, value string) {
	s.Update(map[string]string{key: value})
}

// Update stores all values at once
func (s *RedisStore) Update(values map[string]string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	set := map[string]interface{}{}
	var del []string
	for key, value := range values {
		if value == "" {
			del = append(del, key)
			continue
		}
		set[key] = value
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(set) > 0 {
			pipe.HSet(ctx, s.key, set)
		}
		if len(del) > 0 {
			pipe.HDel(ctx, s.key, del...)
		}
		return nil
	})
	if err != nil {
		s.record(err)
	}
}

// Clear removes the session
func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		s.record(err)
	}
}

// Save reports the first error observed since the last call to Save
// Writes are applied immediately, so there is nothing else to flush
func (s *RedisStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.err
	s.err = nil
	if err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
