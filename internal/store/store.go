// Package store persists the collection as one value under one fixed key of
// a small key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/model"
)

// Key is the single storage key holding the whole collection.
const Key = "endurance-items-v1"

var (
	// ErrNotFound is returned by a Backend when a key has never been written.
	ErrNotFound = errors.New("store: key not found")
	// ErrWatchUnsupported is returned by Watch for backends without a file to watch.
	ErrWatchUnsupported = errors.New("store: backend does not support watching")
)

// Backend is a local key-value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store bridges the in-memory collection and its backend.
type Store struct {
	backend Backend
	log     *zap.Logger
}

func New(b Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: b, log: log.Named("store")}
}

// Load returns the stored collection. It never fails: missing or unreadable
// data yields the default collection and is only logged.
func (s *Store) Load(ctx context.Context) model.Collection {
	b, err := s.backend.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("no stored collection, using defaults")
		} else {
			s.log.Warn("read collection failed, using defaults", zap.Error(err))
		}
		return model.DefaultCollection()
	}
	c, err := decode(b)
	if err != nil {
		s.log.Warn("stored collection is malformed, using defaults", zap.Error(err), zap.Int("bytes", len(b)))
		return model.DefaultCollection()
	}
	return c
}

// Save overwrites the stored collection with c.
func (s *Store) Save(ctx context.Context, c model.Collection) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.backend.Put(ctx, Key, b); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	s.log.Debug("collection saved", zap.Int("bytes", len(b)))
	return nil
}

func (s *Store) Close() error { return s.backend.Close() }

func decode(b []byte) (model.Collection, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return model.Collection{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if len(items) != model.Size {
		return model.Collection{}, fmt.Errorf("want %d items, got %d", model.Size, len(items))
	}
	var c model.Collection
	copy(c[:], items)
	return c, nil
}
