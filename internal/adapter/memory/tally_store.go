// Package memory provides in-process implementations of domain stores for single-instance mode.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pscheid92/reviewpulse/internal/domain"
)

// TallyStore counts classifications in process memory. Counts are lost on restart.
type TallyStore struct {
	mu    sync.Mutex
	tally domain.Tally
}

func NewTallyStore() *TallyStore {
	return &TallyStore{}
}

func (s *TallyStore) Increment(_ context.Context, c domain.Classification) error {
	if !c.IsValid() {
		return fmt.Errorf("increment tally: %w: %q", domain.ErrInvalidClassification, c)
	}
	s.mu.Lock()
	s.tally = s.tally.Add(c, 1)
	s.mu.Unlock()
	return nil
}

func (s *TallyStore) Snapshot(_ context.Context) (domain.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally, nil
}

func (s *TallyStore) Reset(_ context.Context) error {
	s.mu.Lock()
	s.tally = domain.Tally{}
	s.mu.Unlock()
	return nil
}
