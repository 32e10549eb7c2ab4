package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/news"
)

const defaultNewsListLimit = 20

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context, limit int) ([]news.Item, error) {
	if limit <= 0 {
		limit = defaultNewsListLimit
	}

	const query = `
SELECT id, title, body, published_at
FROM news
ORDER BY published_at DESC, id
LIMIT $1`

	var rows []struct {
		ID          string    `db:"id"`
		Title       string    `db:"title"`
		Body        string    `db:"body"`
		PublishedAt time.Time `db:"published_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, errors.Wrap(err, "select news")
	}

	out := make([]news.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, news.Item{
			ID:          row.ID,
			Title:       row.Title,
			Body:        row.Body,
			PublishedAt: row.PublishedAt,
		})
	}

	return out, nil
}

func (r *NewsRepository) Create(ctx context.Context, n news.Item) error {
	const query = `
INSERT INTO news (id, title, body, published_at)
VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, n.ID, n.Title, n.Body, n.PublishedAt); err != nil {
		return errors.Wrap(err, "insert news")
	}

	return nil
}
