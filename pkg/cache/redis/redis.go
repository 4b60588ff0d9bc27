// Package redis stores cache entries in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Store reads and writes plain string keys. A missing key is a miss, not an
// error.
type Store struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
	owned  bool
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithPrefix namespaces every key, e.g. "gmapi:geocode:".
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// New wraps an existing client. The caller keeps ownership of it.
func New(client goredis.UniversalClient, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Dial connects to the server at redisURL (redis:// or rediss://). The
// returned store owns the client and closes it on Close.
func Dial(redisURL string, opts ...Option) (*Store, error) {
	parsed, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	s := New(goredis.NewClient(parsed), opts...)
	s.owned = true
	return s, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get: %w", err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
