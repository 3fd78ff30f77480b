package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/trials"
)

var _ trials.Store = (*Store)(nil)

// Store is an in-memory implementation of trials.Store for tests.
type Store struct {
	mu     sync.RWMutex
	trials map[string]trials.Trial
	ids    *trials.IDGenerator
	now    func() time.Time
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		trials: make(map[string]trials.Trial),
		ids:    trials.NewIDGenerator(),
		now:    time.Now,
	}
}

// Close implements trials.Store.
func (s *Store) Close() error { return nil }

// Append validates and stores a trial.
func (s *Store) Append(ctx context.Context, t trials.Trial) (trials.Trial, error) {
	t, err := trials.Prepare(t, s.ids, s.now)
	if err != nil {
		return trials.Trial{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trials[t.ID]; ok {
		return trials.Trial{}, fmt.Errorf("trial %s: %w", t.ID, internalerr.ErrDuplicate)
	}
	s.trials[t.ID] = t
	return t, nil
}

// Get returns a trial by id.
func (s *Store) Get(ctx context.Context, id string) (trials.Trial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trials[id]
	if !ok {
		return trials.Trial{}, fmt.Errorf("trial %s: %w", id, internalerr.ErrNotFound)
	}
	return t, nil
}

// List returns matching trials, newest first.
func (s *Store) List(ctx context.Context, f trials.Filter) ([]trials.Trial, error) {
	s.mu.RLock()
	out := make([]trials.Trial, 0, len(s.trials))
	for _, t := range s.trials {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID > out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// Remove deletes a trial by id.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trials[id]; !ok {
		return fmt.Errorf("trial %s: %w", id, internalerr.ErrNotFound)
	}
	delete(s.trials, id)
	return nil
}
