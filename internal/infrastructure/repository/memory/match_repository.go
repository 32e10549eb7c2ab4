package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/match"
)

const defaultMatchListLimit = 50

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	// events keep insertion order per match; the timeline relies on it for
	// stable minute ties.
	events  map[string][]match.Event
	lineups map[string][]match.LineupEntry
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	index := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		index[m.ID] = m
	}

	return &MatchRepository{
		matches: index,
		events:  make(map[string][]match.Event),
		lineups: make(map[string][]match.LineupEntry),
	}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMatchListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) AppendEvent(_ context.Context, ev match.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[ev.MatchID] = append(r.events[ev.MatchID], ev)
	return nil
}

func (r *MatchRepository) ListEvents(_ context.Context, matchID string) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]match.Event(nil), r.events[matchID]...), nil
}

func (r *MatchRepository) ReplaceLineups(_ context.Context, matchID string, entries []match.LineupEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lineups[matchID] = append([]match.LineupEntry(nil), entries...)
	return nil
}

func (r *MatchRepository) ListLineups(_ context.Context, matchID string) ([]match.LineupEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]match.LineupEntry(nil), r.lineups[matchID]...), nil
}
