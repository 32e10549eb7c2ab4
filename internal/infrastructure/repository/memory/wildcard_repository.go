package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
)

type WildcardRepository struct {
	mu    sync.RWMutex
	cards map[string]wildcard.Wildcard
}

func NewWildcardRepository(cards []wildcard.Wildcard) *WildcardRepository {
	index := make(map[string]wildcard.Wildcard, len(cards))
	for _, w := range cards {
		index[w.ID] = w
	}

	return &WildcardRepository{cards: index}
}

func (r *WildcardRepository) List(_ context.Context) ([]wildcard.Wildcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wildcard.Wildcard, 0, len(r.cards))
	for _, w := range r.cards {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *WildcardRepository) ListByTeam(_ context.Context, teamID string) ([]wildcard.Wildcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wildcard.Wildcard, 0)
	for _, w := range r.cards {
		if w.TeamID == teamID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *WildcardRepository) GetByID(_ context.Context, wildcardID string) (wildcard.Wildcard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.cards[wildcardID]
	return w, ok, nil
}

func (r *WildcardRepository) Create(_ context.Context, w wildcard.Wildcard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards[w.ID] = w
	return nil
}

func (r *WildcardRepository) MarkUsed(_ context.Context, wildcardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.cards[wildcardID]
	if !ok {
		return fmt.Errorf("wildcard %s not found", wildcardID)
	}
	w.Used = true
	r.cards[wildcardID] = w

	return nil
}
