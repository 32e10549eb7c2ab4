package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ligaescolar/kings-api/internal/domain/news"
)

const defaultNewsListLimit = 20

type NewsRepository struct {
	mu    sync.RWMutex
	items map[string]news.Item
}

func NewNewsRepository(items []news.Item) *NewsRepository {
	index := make(map[string]news.Item, len(items))
	for _, n := range items {
		index[n.ID] = n
	}

	return &NewsRepository{items: index}
}

func (r *NewsRepository) List(_ context.Context, limit int) ([]news.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Item, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID < out[j].ID
	})

	if limit <= 0 {
		limit = defaultNewsListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *NewsRepository) Create(_ context.Context, n news.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[n.ID] = n
	return nil
}
