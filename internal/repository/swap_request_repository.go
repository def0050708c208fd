package repository

import (
	"context"
	"sync"
	"time"

	"github.com/noah-isme/skillswap/internal/models"
)

// UpdateSwapStatusParams describes a compare-and-set status change.
type UpdateSwapStatusParams struct {
	ID        string
	From      models.SwapStatus
	To        models.SwapStatus
	UpdatedAt time.Time
}

// SwapRequestRepository holds swap requests in creation order. Nothing is ever removed.
type SwapRequestRepository struct {
	mu       sync.RWMutex
	requests []models.SwapRequest
	index    map[string]int
}

// NewSwapRequestRepository constructs an empty store.
func NewSwapRequestRepository() *SwapRequestRepository {
	return &SwapRequestRepository{index: make(map[string]int)}
}

// Create appends a request.
func (r *SwapRequestRepository) Create(ctx context.Context, req *models.SwapRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[req.ID]; ok {
		return ErrConflict
	}
	r.index[req.ID] = len(r.requests)
	r.requests = append(r.requests, req.Clone())
	return nil
}

// GetByID returns the request with the given ID.
func (r *SwapRequestRepository) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	req := r.requests[idx].Clone()
	return &req, nil
}

// List returns requests matching the filter in creation order.
func (r *SwapRequestRepository) List(ctx context.Context, filter models.SwapRequestFilter) ([]models.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.SwapRequest, 0)
	for _, req := range r.requests {
		if filter.Matches(req) {
			result = append(result, req.Clone())
		}
	}
	return result, nil
}

// CountByStatus tallies requests per status.
func (r *SwapRequestRepository) CountByStatus(ctx context.Context) (map[models.SwapStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.SwapStatus]int, 4)
	for _, req := range r.requests {
		counts[req.Status]++
	}
	return counts, nil
}

// UpdateStatus moves a request from params.From to params.To.
// It returns ErrStatusChanged when the stored status is no longer params.From.
func (r *SwapRequestRepository) UpdateStatus(ctx context.Context, params UpdateSwapStatusParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[params.ID]
	if !ok {
		return ErrNotFound
	}
	req := &r.requests[idx]
	if req.Status != params.From {
		return ErrStatusChanged
	}
	req.Status = params.To
	req.UpdatedAt = params.UpdatedAt
	return nil
}
