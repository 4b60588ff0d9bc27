// Package cache defines the byte store the geocoder keeps raw lookup bodies
// in, plus a selector over the bundled backends.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goliatone/go-gmapi/pkg/cache/badger"
	"github.com/goliatone/go-gmapi/pkg/cache/memory"
	"github.com/goliatone/go-gmapi/pkg/cache/redis"
)

// Store is a pass-through key/value cache. A miss is reported with ok=false
// and a nil error; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Nop never hits and drops every write. Use it to disable caching.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, string, []byte) error { return nil }

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendBadger = "badger"
	BackendNone   = "none"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("cache: unknown backend")

// Settings selects and configures a backend.
type Settings struct {
	Backend   string        `mapstructure:"backend" json:"backend" yaml:"backend"`
	TTL       time.Duration `mapstructure:"ttl" json:"ttl" yaml:"ttl"`
	Prefix    string        `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	RedisURL  string        `mapstructure:"redis_url" json:"redis_url" yaml:"redis_url"`
	BadgerDir string        `mapstructure:"badger_dir" json:"badger_dir" yaml:"badger_dir"`
}

// Open builds the store named by settings.Backend. An empty name selects the
// in-process memory store. Stores holding resources implement io.Closer; use
// Close to release them.
func Open(settings Settings) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(settings.Backend)) {
	case "", BackendMemory:
		return memory.New(memory.WithTTL(settings.TTL)), nil
	case BackendNone:
		return Nop{}, nil
	case BackendRedis:
		if settings.RedisURL == "" {
			return nil, fmt.Errorf("cache: redis backend requires a redis url")
		}
		store, err := redis.Dial(settings.RedisURL,
			redis.WithTTL(settings.TTL),
			redis.WithPrefix(settings.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("cache: open redis: %w", err)
		}
		return store, nil
	case BackendBadger:
		store, err := badger.Open(settings.BadgerDir,
			badger.WithTTL(settings.TTL),
			badger.WithPrefix(settings.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("cache: open badger: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, settings.Backend)
	}
}

// Close releases store when it holds resources.
func Close(store Store) error {
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
