// Package state holds the shared UI state and the subscriber registry
// that propagates every change to all mounted hooks.
package state

import (
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// MergeBase selects the record a dispatched patch is merged over.
type MergeBase int

const (
	// MergeAuthoritative merges over the store's current state.
	MergeAuthoritative MergeBase = iota
	// MergeLocal merges over the dispatching hook's cached copy. Two hooks
	// dispatching from stale copies can drop each other's fields.
	MergeLocal
)

func (m MergeBase) String() string {
	if m == MergeLocal {
		return "local"
	}
	return "authoritative"
}

// Option customises a Store.
type Option func(*Store)

// WithLogger attaches a logger; subscriptions and broadcasts log at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithMergeBase selects how Dispatch merges patches.
func WithMergeBase(base MergeBase) Option {
	return func(s *Store) {
		s.mergeBase = base
	}
}

// Store owns the single SharedState of a UI process and its subscribers.
// Callbacks run synchronously on the dispatching goroutine, after the
// store's lock is released, so they may read State.
type Store struct {
	mu        sync.Mutex
	current   SharedState
	registry  *Registry
	mergeBase MergeBase
	log       *logger.Logger
}

// New creates the store with its initial state.
func New(initial SharedState, opts ...Option) *Store {
	s := &Store{
		current:  initial.Normalize(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() SharedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// MergeBase reports how Dispatch merges patches.
func (s *Store) MergeBase() MergeBase {
	return s.mergeBase
}

// Subscribe registers cb under a fresh id.
func (s *Store) Subscribe(cb Callback) SubscriptionID {
	id := NewSubscriptionID()
	// A fresh UUID cannot collide with a live entry.
	_ = s.SubscribeWithID(id, cb)
	return id
}

// SubscribeWithID registers cb under a caller-chosen id.
func (s *Store) SubscribeWithID(id SubscriptionID, cb Callback) error {
	s.mu.Lock()
	err := s.registry.Add(id, cb)
	count := s.registry.Len()
	s.mu.Unlock()

	if err != nil {
		s.log.WithField("subscriber", string(id)).Warn("duplicate subscription rejected")
		return err
	}
	s.log.WithFields(map[string]any{"subscriber": string(id), "subscribers": count}).Debug("subscribed")
	return nil
}

// Unsubscribe removes the entry for id. Unknown ids are ignored.
func (s *Store) Unsubscribe(id SubscriptionID) {
	s.mu.Lock()
	removed := s.registry.Remove(id)
	count := s.registry.Len()
	s.mu.Unlock()

	if removed {
		s.log.WithFields(map[string]any{"subscriber": string(id), "subscribers": count}).Debug("unsubscribed")
	}
}

// Len returns the number of live subscribers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// Broadcast merges p over the current state, stores the result and
// delivers it to every subscriber before returning it.
func (s *Store) Broadcast(p Patch) SharedState {
	return s.commit(func(current SharedState) SharedState {
		return p.Apply(current)
	})
}

// BroadcastFrom merges p over base instead of the current state. The
// merged record becomes the current state and is delivered to every
// subscriber.
func (s *Store) BroadcastFrom(base SharedState, p Patch) SharedState {
	return s.commit(func(SharedState) SharedState {
		return p.Apply(base)
	})
}

func (s *Store) commit(merge func(SharedState) SharedState) SharedState {
	s.mu.Lock()
	merged := merge(s.current)
	s.current = merged
	callbacks := s.registry.Snapshot()
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"language":    merged.Language,
		"theme":       merged.Theme,
		"font_scale":  merged.FontScale,
		"subscribers": len(callbacks),
	}).Debug("broadcast")

	for _, cb := range callbacks {
		cb(merged.Clone())
	}
	return merged.Clone()
}

// Dispatch broadcasts p on behalf of a hook whose cached copy is local,
// merging over the base selected by the store's MergeBase.
func (s *Store) Dispatch(local SharedState, p Patch) SharedState {
	if s.mergeBase == MergeLocal {
		return s.BroadcastFrom(local, p)
	}
	return s.Broadcast(p)
}
