package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/swap"
)

type SwapRepository struct {
	mu    sync.RWMutex
	swaps map[string]swap.ShiftSwapRequest
}

func NewSwapRepository() *SwapRepository {
	return &SwapRepository{swaps: make(map[string]swap.ShiftSwapRequest)}
}

// Seed stores a swap request, assigning an ID when missing.
func (r *SwapRepository) Seed(s swap.ShiftSwapRequest) swap.ShiftSwapRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = newID()
	}
	r.swaps[s.ID] = s
	return s
}

func (r *SwapRepository) GetByID(_ context.Context, id string) (*swap.ShiftSwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.swaps[id]
	if !ok {
		return nil, swap.ErrSwapNotFound
	}
	return &s, nil
}

func (r *SwapRepository) Complete(_ context.Context, id, reviewNote string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.swaps[id]
	if !ok {
		return swap.ErrSwapNotFound
	}
	now := time.Now()
	s.Status = swap.StatusAbgeschlossen
	s.ReviewNote = &reviewNote
	s.ReviewedAt = &now
	s.UpdatedAt = now
	r.swaps[id] = s
	return nil
}
