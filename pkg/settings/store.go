package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/kvstore"
	"github.com/dmitrymomot/notifykit/pkg/registry"
)

// DefaultStorageKey is the blob key used when none is configured.
const DefaultStorageKey = "notification_settings"

// Store keeps the authoritative copy of the user's notification
// settings in memory and writes the whole document back to the blob
// store on every mutation.
type Store struct {
	mu      sync.RWMutex
	current Settings
	blobs   kvstore.Store
	key     string
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStorageKey overrides the blob key the settings document is kept under.
func WithStorageKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger for the Store.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore loads the persisted settings document once and returns a
// write-through store. A missing or unreadable document falls back to
// Defaults rather than failing construction, so a corrupted blob can
// never lock the user out of notifications.
func NewStore(ctx context.Context, blobs kvstore.Store, opts ...StoreOption) (*Store, error) {
	if blobs == nil {
		return nil, ErrStorageNil
	}

	s := &Store{
		blobs:  blobs,
		key:    DefaultStorageKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) Settings {
	blob, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to load notification settings, using defaults",
				slog.String("key", s.key),
				slog.String("error", err.Error()))
		}
		return Defaults()
	}

	loaded := Defaults()
	if err := json.Unmarshal(blob, &loaded); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to parse notification settings, using defaults",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		return Defaults()
	}
	return loaded
}

// Current returns a deep copy of the effective settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies mutate to the settings and persists the result
// immediately. The mutation is discarded if persistence fails.
func (s *Store) Update(ctx context.Context, mutate func(*Settings)) error {
	if mutate == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	mutate(&next)

	if next.QuietHours.Enabled {
		if err := next.QuietHours.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
	}
	for t, p := range next.Priority {
		if !p.Valid() {
			return fmt.Errorf("%w: priority override for %q out of range", ErrInvalidSettings, t)
		}
	}

	blob, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.blobs.Set(ctx, s.key, blob); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	s.current = next
	return nil
}

// SetPriorityOverride records a per-type priority override.
func (s *Store) SetPriorityOverride(ctx context.Context, t registry.Type, p registry.Priority) error {
	return s.Update(ctx, func(st *Settings) {
		if st.Priority == nil {
			st.Priority = make(map[registry.Type]registry.Priority)
		}
		st.Priority[t] = p
	})
}

// ClearPriorityOverride removes a per-type priority override.
func (s *Store) ClearPriorityOverride(ctx context.Context, t registry.Type) error {
	return s.Update(ctx, func(st *Settings) {
		delete(st.Priority, t)
	})
}
