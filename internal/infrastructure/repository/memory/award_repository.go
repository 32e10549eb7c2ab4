package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/award"
)

type AwardRepository struct {
	mu     sync.RWMutex
	awards map[string]award.SeasonAward
}

func NewAwardRepository(awards []award.SeasonAward) *AwardRepository {
	index := make(map[string]award.SeasonAward, len(awards))
	for _, a := range awards {
		index[a.ID] = a
	}

	return &AwardRepository{awards: index}
}

func (r *AwardRepository) List(_ context.Context) ([]award.SeasonAward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]award.SeasonAward, 0, len(r.awards))
	for _, a := range r.awards {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season > out[j].Season
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *AwardRepository) Create(_ context.Context, a award.SeasonAward) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.awards[a.ID] = a
	return nil
}
