// Package sink abstracts the external store canonical postings land in.
// The engine only ever asks two things of it: what is currently stored for
// a fingerprint, and write this posting under its fingerprint. Uniqueness
// on the fingerprint column and write serialization are the sink's
// responsibility.
package sink

import (
	"context"
	"sync"

	"jobmill/internal/models"
)

type Sink interface {
	// Lookup returns the stored posting for a fingerprint, nil when none
	// exists.
	Lookup(ctx context.Context, fingerprint string) (*models.CanonicalPosting, error)

	// Store writes a posting keyed by its fingerprint, replacing any
	// previous version.
	Store(ctx context.Context, posting *models.CanonicalPosting) error
}

// Memory is an in-process sink used by tests and dry runs.
type Memory struct {
	mu       sync.RWMutex
	postings map[string]models.CanonicalPosting
	writes   int
}

func NewMemory() *Memory {
	return &Memory{postings: make(map[string]models.CanonicalPosting)}
}

func (m *Memory) Lookup(ctx context.Context, fingerprint string) (*models.CanonicalPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	posting, ok := m.postings[fingerprint]
	if !ok {
		return nil, nil
	}
	return &posting, nil
}

func (m *Memory) Store(ctx context.Context, posting *models.CanonicalPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postings[posting.Fingerprint] = *posting
	m.writes++
	return nil
}

// Writes reports how many Store calls the sink has seen; idempotence tests
// assert a re-run produces zero additional writes.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.postings)
}
