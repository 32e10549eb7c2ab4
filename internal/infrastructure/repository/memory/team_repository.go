package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	index := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		index[t.ID] = t
	}

	return &TeamRepository{teams: index}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return team.SortByStandings(out[i], out[j]) })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	return t, ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			return t, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByOwner(_ context.Context, ownerID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ownerID == "" {
		return team.Team{}, false, nil
	}
	for _, t := range r.teams {
		if t.OwnerID == ownerID {
			return t, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[t.ID] = t
	return nil
}

func (r *TeamRepository) AddToBalance(_ context.Context, teamID string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	t.EurosKings += delta
	r.teams[teamID] = t

	return nil
}
