// Package settings stores per-game git settings in the backend with
// per-key debounced writes.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"k8s.io/utils/clock"
)

// ErrUnknownSettingKey is returned for a key outside [models.SettingKeys].
var ErrUnknownSettingKey = errors.New("unknown setting key")

const (
	// DefaultDebounceWindow is the quiescence window applied when none is
	// configured.
	DefaultDebounceWindow = 1500 * time.Millisecond

	defaultWriteTimeout = 10 * time.Second
)

// Client reads and writes per-game settings in the backend.
type Client interface {
	GetEntitySetting(ctx context.Context, entityID, key, defaults string) (models.ConfigResponse, error)
	SetEntitySetting(ctx context.Context, entityID, key, value string) error
}

type pendingKey struct {
	entityID string
	key      models.SettingKey
}

type pendingWrite struct {
	timer clock.Timer
	value string
	gen   uint64
}

// writeLane orders the backend writes of one key. Tickets are issued under
// Store.mu in call order; a write whose ticket is older than the last one
// written is dropped.
type writeLane struct {
	mu      sync.Mutex
	issued  uint64
	written uint64
}

// Store is the SettingsStore. Each (game, key) pair owns its own timer, so
// writes for one key never cancel or absorb writes for another.
type Store struct {
	client Client
	clock  clock.WithDelayedExecution
	window time.Duration

	mu      sync.Mutex
	pending map[pendingKey]*pendingWrite
	gen     uint64
	lanes   map[pendingKey]*writeLane

	logger *logger.Logger
}

// NewStore returns a Store debouncing writes by window. A nil clk selects the
// real clock and a non-positive window selects [DefaultDebounceWindow].
func NewStore(client Client, clk clock.WithDelayedExecution, window time.Duration, logger *logger.Logger) *Store {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	return &Store{
		client:  client,
		clock:   clk,
		window:  window,
		pending: make(map[pendingKey]*pendingWrite),
		lanes:   make(map[pendingKey]*writeLane),
		logger:  logger,
	}
}

// Get reads key for entityID from the backend. It returns fallback when the
// read reports success:false or fails in transport.
func (s *Store) Get(ctx context.Context, entityID string, key models.SettingKey, fallback string) string {
	resp, err := s.client.GetEntitySetting(ctx, entityID, string(key), fallback)
	if err != nil {
		s.logger.Warn().Err(err).Str("appid", entityID).Str("key", string(key)).Msg("failed to read setting")
		return fallback
	}
	if !resp.Success {
		return fallback
	}
	return resp.Result
}

// Load reads every setting of entityID with empty fallbacks.
func (s *Store) Load(ctx context.Context, entityID string) models.EntitySettings {
	var es models.EntitySettings
	for _, key := range models.SettingKeys {
		es.Set(key, s.Get(ctx, entityID, key, ""))
	}
	return es
}

// Set stores value under key. With immediate the write goes through now and
// any pending write for the key is dropped. Otherwise the key's timer is
// (re)armed and only the last value is written once the window passes
// without another Set for the same key.
func (s *Store) Set(ctx context.Context, entityID string, key models.SettingKey, value string, immediate bool) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSettingKey, key)
	}

	pk := pendingKey{entityID: entityID, key: key}

	s.mu.Lock()
	if prev, ok := s.pending[pk]; ok {
		prev.timer.Stop()
		delete(s.pending, pk)
	}

	if immediate {
		lane, ticket := s.ticketLocked(pk)
		s.mu.Unlock()
		s.write(ctx, pk, value, lane, ticket)
		return nil
	}

	s.gen++
	gen := s.gen
	s.pending[pk] = &pendingWrite{
		value: value,
		gen:   gen,
		timer: s.clock.AfterFunc(s.window, func() { s.fire(pk, gen) }),
	}
	s.mu.Unlock()

	return nil
}

// Flush writes every pending value now.
func (s *Store) Flush(ctx context.Context) {
	type dueWrite struct {
		value  string
		lane   *writeLane
		ticket uint64
	}

	s.mu.Lock()
	due := make(map[pendingKey]dueWrite, len(s.pending))
	for pk, w := range s.pending {
		w.timer.Stop()
		lane, ticket := s.ticketLocked(pk)
		due[pk] = dueWrite{value: w.value, lane: lane, ticket: ticket}
	}
	s.pending = make(map[pendingKey]*pendingWrite)
	s.mu.Unlock()

	for pk, d := range due {
		s.write(ctx, pk, d.value, d.lane, d.ticket)
	}
}

// Pending returns the number of writes waiting for their window to close.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// fire runs on the timer. A superseded generation never writes.
func (s *Store) fire(pk pendingKey, gen uint64) {
	s.mu.Lock()
	w, ok := s.pending[pk]
	if !ok || w.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.pending, pk)
	value := w.value
	lane, ticket := s.ticketLocked(pk)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), defaultWriteTimeout)
	defer cancel()
	s.write(ctx, pk, value, lane, ticket)
}

// ticketLocked issues the next write ticket for pk. Callers hold s.mu.
func (s *Store) ticketLocked(pk pendingKey) (*writeLane, uint64) {
	lane, ok := s.lanes[pk]
	if !ok {
		lane = &writeLane{}
		s.lanes[pk] = lane
	}
	lane.issued++
	return lane, lane.issued
}

func (s *Store) write(ctx context.Context, pk pendingKey, value string, lane *writeLane, ticket uint64) {
	lane.mu.Lock()
	defer lane.mu.Unlock()

	if ticket < lane.written {
		s.logger.Debug().Str("appid", pk.entityID).Str("key", string(pk.key)).
			Msg("dropping superseded setting write")
		return
	}
	lane.written = ticket

	if err := s.client.SetEntitySetting(ctx, pk.entityID, string(pk.key), value); err != nil {
		s.logger.Warn().Err(err).Str("appid", pk.entityID).Str("key", string(pk.key)).
			Msg("persistence warning: setting not saved")
	}
}
