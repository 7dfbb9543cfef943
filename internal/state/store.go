// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the panel's process-wide observable [models.SyncState].
//
// A [Store] is created once per process and injected into every component that
// reads or mutates the state. Mutations go through [Store.Set], which notifies
// subscribers synchronously and may forward preference changes to the backend
// configuration on a background goroutine.
package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
)

// ErrUnknownStateKey is returned by Set for a key that names no state field.
var ErrUnknownStateKey = errors.New("unknown state key")

// defaultPersistTimeout bounds one background config write.
const defaultPersistTimeout = 10 * time.Second

// ConfigClient reads and writes backend configuration values.
type ConfigClient interface {
	GetConfig(ctx context.Context, key, defaults string) (models.ConfigResponse, error)
	SetConfig(ctx context.Context, key, value string) error
}

// SubscriptionID identifies a registered subscriber.
type SubscriptionID uint64

// Subscriber receives the full state snapshot after every change.
type Subscriber func(models.SyncState)

type subscription struct {
	id SubscriptionID
	fn Subscriber
}

// keyWriter serializes the backend writes of one key. While a write is in
// flight, later values collapse into value and are written once it returns.
type keyWriter struct {
	running bool
	dirty   bool
	value   bool
}

// Store is the mutex-protected state container with an ordered subscriber
// list.
type Store struct {
	mu     sync.RWMutex
	state  models.SyncState
	subs   []subscription
	nextID SubscriptionID

	config         ConfigClient
	persistTimeout time.Duration
	persisting     sync.WaitGroup
	writers        map[models.StateKey]*keyWriter

	logger *logger.Logger
}

// NewStore returns a Store holding [models.DefaultSyncState]. config may be
// nil, in which case persisted Sets only change memory.
func NewStore(config ConfigClient, logger *logger.Logger) *Store {
	return &Store{
		state:          models.DefaultSyncState(),
		config:         config,
		persistTimeout: defaultPersistTimeout,
		writers:        make(map[models.StateKey]*keyWriter),
		logger:         logger,
	}
}

// Get returns the current snapshot.
func (s *Store) Get() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set replaces one field and notifies every subscriber, in subscription
// order, before returning. With persist it also writes the value to the
// backend configuration in the background; a failed write is logged and the
// in-memory change stays.
func (s *Store) Set(key models.StateKey, value bool, persist bool) error {
	s.mu.Lock()
	next, ok := s.state.With(key, value)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownStateKey, key)
	}
	s.state = next
	subs := s.snapshotSubs()
	if persist {
		s.enqueueLocked(key, value)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return nil
}

// Subscribe registers fn and returns its id. IDs increase monotonically.
func (s *Store) Subscribe(fn Subscriber) SubscriptionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.subs = append(s.subs, subscription{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes the subscriber registered under id. Unknown ids are
// ignored.
func (s *Store) Unsubscribe(id SubscriptionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Initialize restores the persisted preferences from the backend. Each key
// defaults to "true"; a key is applied only when its read succeeds and holds
// a boolean. Subscribers are notified once if anything changed.
func (s *Store) Initialize(ctx context.Context) {
	if s.config == nil {
		return
	}

	loaded := make(map[models.StateKey]bool, len(models.PersistedStateKeys))
	for _, key := range models.PersistedStateKeys {
		resp, err := s.config.GetConfig(ctx, string(key), strconv.FormatBool(true))
		if err != nil {
			s.logger.Warn().Err(err).Str("key", string(key)).Msg("failed to load state preference")
			continue
		}
		if !resp.Success {
			continue
		}
		value, err := strconv.ParseBool(resp.Result)
		if err != nil {
			s.logger.Warn().Str("key", string(key)).Str("value", resp.Result).Msg("ignoring malformed state preference")
			continue
		}
		loaded[key] = value
	}

	s.mu.Lock()
	before := s.state
	for key, value := range loaded {
		s.state, _ = s.state.With(key, value)
	}
	next := s.state
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if next == before {
		return
	}
	for _, sub := range subs {
		sub.fn(next)
	}
}

// Close waits for background persistence writes to finish.
func (s *Store) Close() {
	s.persisting.Wait()
}

// enqueueLocked schedules value for key. Writes of one key run one at a time
// in call order, so the backend ends up with the value last set in memory.
// Callers hold s.mu.
func (s *Store) enqueueLocked(key models.StateKey, value bool) {
	if s.config == nil {
		return
	}

	w, ok := s.writers[key]
	if !ok {
		w = &keyWriter{}
		s.writers[key] = w
	}
	w.value = value
	w.dirty = true
	if w.running {
		return
	}

	w.running = true
	s.persisting.Add(1)
	go s.drain(key, w)
}

func (s *Store) drain(key models.StateKey, w *keyWriter) {
	defer s.persisting.Done()

	for {
		s.mu.Lock()
		if !w.dirty {
			w.running = false
			s.mu.Unlock()
			return
		}
		value := w.value
		w.dirty = false
		s.mu.Unlock()

		s.persist(key, value)
	}
}

func (s *Store) persist(key models.StateKey, value bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.config.SetConfig(ctx, string(key), strconv.FormatBool(value)); err != nil {
		s.logger.Warn().Err(err).Str("key", string(key)).Bool("value", value).
			Msg("persistence warning: state change kept in memory only")
	}
}

// snapshotSubs copies the subscriber list. Callers hold s.mu.
func (s *Store) snapshotSubs() []subscription {
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	return subs
}
