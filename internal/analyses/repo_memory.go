package analyses

import (
	"context"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
// Used when no DATABASE_URL is configured; contents are lost on restart.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Analysis)}
}

// Put stores the analysis.
func (r *MemoryRepo) Put(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[id]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

var _ Repo = (*MemoryRepo)(nil)
