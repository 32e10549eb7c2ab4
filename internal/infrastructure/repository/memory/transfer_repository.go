package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/market"
)

type TransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]market.Transfer
}

func NewTransferRepository(transfers []market.Transfer) *TransferRepository {
	index := make(map[string]market.Transfer, len(transfers))
	for _, t := range transfers {
		index[t.ID] = t
	}

	return &TransferRepository{transfers: index}
}

func (r *TransferRepository) List(_ context.Context, status string) ([]market.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]market.Transfer, 0, len(r.transfers))
	for _, t := range r.transfers {
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	sortTransfers(out)

	return out, nil
}

func (r *TransferRepository) ListByTeam(_ context.Context, teamID string) ([]market.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]market.Transfer, 0)
	for _, t := range r.transfers {
		if t.ToTeamID == teamID || t.FromTeamID == teamID {
			out = append(out, t)
		}
	}
	sortTransfers(out)

	return out, nil
}

func (r *TransferRepository) GetByID(_ context.Context, transferID string) (market.Transfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transfers[transferID]
	return t, ok, nil
}

func (r *TransferRepository) Create(_ context.Context, t market.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transfers[t.ID] = t
	return nil
}

// Newest first, matching the feed ordering on the portal.
func sortTransfers(out []market.Transfer) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
