package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/request"
)

type RequestRepository struct {
	mu       sync.RWMutex
	requests map[string]request.Request
}

func NewRequestRepository(requests []request.Request) *RequestRepository {
	index := make(map[string]request.Request, len(requests))
	for _, rq := range requests {
		index[rq.ID] = rq
	}

	return &RequestRepository{requests: index}
}

func (r *RequestRepository) List(_ context.Context, status string) ([]request.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]request.Request, 0, len(r.requests))
	for _, rq := range r.requests {
		if status != "" && rq.Status != status {
			continue
		}
		out = append(out, rq)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *RequestRepository) GetByID(_ context.Context, requestID string) (request.Request, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rq, ok := r.requests[requestID]
	return rq, ok, nil
}

func (r *RequestRepository) Create(_ context.Context, rq request.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[rq.ID] = rq
	return nil
}

func (r *RequestRepository) UpdateReview(_ context.Context, requestID, status, reviewedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rq, ok := r.requests[requestID]
	if !ok {
		return fmt.Errorf("request %s not found", requestID)
	}
	rq.Status = status
	rq.ReviewedBy = reviewedBy
	r.requests[requestID] = rq

	return nil
}

func (r *RequestRepository) CountPending(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rq := range r.requests {
		if rq.Status == request.StatusPending {
			count++
		}
	}

	return count, nil
}
