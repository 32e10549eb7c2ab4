package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/player"
)

const defaultPlayerListLimit = 50

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	return &PlayerRepository{players: index}
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	switch filter.Sort {
	case player.SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case player.SortByMarketValue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].MarketValue > out[j].MarketValue })
	case player.SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPlayerListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[p.ID] = p
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; !ok {
		return fmt.Errorf("player %s not found", p.ID)
	}
	r.players[p.ID] = p

	return nil
}
