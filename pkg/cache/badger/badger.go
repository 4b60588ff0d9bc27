// Package badger stores cache entries in an embedded badger database.
package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

type Store struct {
	db     *badger.DB
	prefix string
	ttl    time.Duration
	logger *zerolog.Logger
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithLogger routes badger's own log output through logger. Without it badger
// is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = &logger }
}

// Open opens (or creates) the database in dir. An empty dir keeps the whole
// database in memory.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	bopts := badger.DefaultOptions(dir)
	if dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	if s.logger != nil {
		bopts = bopts.WithLogger(logAdapter{s.logger.With().Str("component", "badger").Logger()})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger: open %q: %w", dir, err)
	}
	s.db = db
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(s.prefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger: get: %w", err)
	}
	return value, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(s.prefix+key), value)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("badger: set: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type logAdapter struct {
	logger zerolog.Logger
}

func (l logAdapter) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l logAdapter) Warningf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l logAdapter) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l logAdapter) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}
