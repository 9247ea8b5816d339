package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader hydrates the collections of an owner from a persistent mirror.
type Loader interface {
	LoadSnapshot(ctx context.Context, ownerID string) (Snapshot, error)
}

// sessionEntry is a cached store with the time it was loaded.
type sessionEntry struct {
	store *Store
	built time.Time
}

// Sessions holds one Store per owner. Stores are hydrated on first use and
// kept until their TTL expires; a zero TTL keeps them forever.
type Sessions struct {
	loader Loader
	ttl    time.Duration
	logger *zap.Logger
	opts   []Option

	mu      sync.RWMutex
	entries map[string]*sessionEntry
	sf      singleflight.Group
}

// NewSessions creates a session cache. loader may be nil, in which case
// every session starts empty.
func NewSessions(loader Loader, ttl time.Duration, logger *zap.Logger, opts ...Option) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{
		loader:  loader,
		ttl:     ttl,
		logger:  logger,
		opts:    opts,
		entries: make(map[string]*sessionEntry),
	}
}

func (s *Sessions) expired(e *sessionEntry) bool {
	if s.ttl == 0 {
		return false
	}
	return time.Since(e.built) > s.ttl
}

// Get returns the store of an owner, loading it if needed.
// Loading uses singleflight so concurrent first requests share one load.
// A failed load is logged and yields an empty store that is not cached,
// so the next call retries hydration.
func (s *Sessions) Get(ctx context.Context, ownerID string) *Store {
	s.mu.RLock()
	entry, ok := s.entries[ownerID]
	s.mu.RUnlock()
	if ok && !s.expired(entry) {
		return entry.store
	}

	result, _, _ := s.sf.Do(ownerID, func() (interface{}, error) {
		s.mu.RLock()
		entry, ok := s.entries[ownerID]
		s.mu.RUnlock()
		if ok && !s.expired(entry) {
			return entry.store, nil
		}

		store, loaded := s.load(ctx, ownerID)
		if !loaded {
			return store, nil
		}

		s.mu.Lock()
		s.entries[ownerID] = &sessionEntry{store: store, built: time.Now()}
		s.mu.Unlock()

		return store, nil
	})

	return result.(*Store)
}

func (s *Sessions) load(ctx context.Context, ownerID string) (*Store, bool) {
	if s.loader == nil {
		return NewStore(ownerID, s.opts...), true
	}

	snap, err := s.loader.LoadSnapshot(ctx, ownerID)
	if err != nil {
		s.logger.Warn("Failed to hydrate session, starting empty",
			zap.String("owner_id", ownerID),
			zap.Error(err))
		return NewStore(ownerID, s.opts...), false
	}

	s.logger.Debug("Session hydrated",
		zap.String("owner_id", ownerID),
		zap.Int("purchases", len(snap.Purchases)),
		zap.Int("pantry", len(snap.Pantry)),
		zap.Int("shopping_list", len(snap.ShoppingList)))
	return Restore(ownerID, snap, s.opts...), true
}

// Invalidate drops the cached store of an owner.
func (s *Sessions) Invalidate(ownerID string) {
	s.mu.Lock()
	delete(s.entries, ownerID)
	s.mu.Unlock()
}

// Len returns the number of cached sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
