package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/discipline"
)

type SuspensionRepository struct {
	mu          sync.RWMutex
	suspensions map[string]discipline.Suspension
}

func NewSuspensionRepository(suspensions []discipline.Suspension) *SuspensionRepository {
	index := make(map[string]discipline.Suspension, len(suspensions))
	for _, s := range suspensions {
		index[s.ID] = s
	}

	return &SuspensionRepository{suspensions: index}
}

func (r *SuspensionRepository) List(_ context.Context) ([]discipline.Suspension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]discipline.Suspension, 0, len(r.suspensions))
	for _, s := range r.suspensions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *SuspensionRepository) Create(_ context.Context, s discipline.Suspension) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suspensions[s.ID] = s
	return nil
}
