package sessionstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/pkg/clock"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/errs"

	"github.com/google/uuid"
)

type entry struct {
	form     *booking.Form
	lastSeen time.Time
}

// Store keeps booking forms in memory, keyed by session id. Forms leave the store after
// TTL without access. Callers only ever see clones.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	clock   clock.Clock
	logger  *slog.Logger
}

func NewStore(cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		entries: make(map[uuid.UUID]*entry),
		ttl:     cfg.TTL,
		clock:   clk,
		logger:  logger,
	}
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*booking.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return e.form.Clone(), nil
}

func (s *Store) Put(_ context.Context, id uuid.UUID, form *booking.Form) error {
	if form == nil {
		return errs.New("sessionstore: nil form")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = &entry{form: form.Clone(), lastSeen: s.clock.Now()}
	return nil
}

// Update applies fn to the stored form under the store lock. Whatever fn changed is kept even when it
// returns an error, so messages it recorded for the visitor survive.
func (s *Store) Update(_ context.Context, id uuid.UUID, fn func(*booking.Form) error) (*booking.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}

	working := e.form.Clone()
	err = fn(working)
	e.form = working
	return working.Clone(), err
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// EvictExpired drops every form idle for longer than the TTL and reports how many were removed.
func (s *Store) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor evicts expired forms every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.EvictExpired(); n > 0 {
				s.logger.Debug("evicted expired booking sessions", "count", n)
			}
		}
	}
}

func (s *Store) lookupLocked(id uuid.UUID) (*entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return nil, errs.ErrSessionExpired
	}
	e.lastSeen = now
	return e, nil
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
