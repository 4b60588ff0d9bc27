// Package memory is an in-process cache store.
package memory

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Store keeps values in a concurrent map. Entries expire after the configured
// TTL; a zero TTL keeps them for the life of the process.
type Store struct {
	entries *xsync.MapOf[string, entry]
	ttl     time.Duration
	now     func() time.Time
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		entries: xsync.NewMapOf[string, entry](),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.entries.Load(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		s.entries.Delete(key)
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	e := entry{value: append([]byte(nil), value...)}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.entries.Store(key, e)
	return nil
}

// Len reports the number of stored entries, expired ones included until
// they are next read.
func (s *Store) Len() int {
	return s.entries.Size()
}
