package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/discipline"
)

type SuspensionRepository struct {
	db *sqlx.DB
}

func NewSuspensionRepository(db *sqlx.DB) *SuspensionRepository {
	return &SuspensionRepository{db: db}
}

func (r *SuspensionRepository) List(ctx context.Context) ([]discipline.Suspension, error) {
	const query = `
SELECT id, player_id, match_count, reason, created_at
FROM suspensions
ORDER BY created_at DESC, id`

	var rows []struct {
		ID         string    `db:"id"`
		PlayerID   string    `db:"player_id"`
		MatchCount int       `db:"match_count"`
		Reason     string    `db:"reason"`
		CreatedAt  time.Time `db:"created_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "select suspensions")
	}

	out := make([]discipline.Suspension, 0, len(rows))
	for _, row := range rows {
		out = append(out, discipline.Suspension{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			MatchCount: row.MatchCount,
			Reason:     row.Reason,
			CreatedAt:  row.CreatedAt,
		})
	}

	return out, nil
}

func (r *SuspensionRepository) Create(ctx context.Context, s discipline.Suspension) error {
	const query = `
INSERT INTO suspensions (id, player_id, match_count, reason, created_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, s.ID, s.PlayerID, s.MatchCount, s.Reason, s.CreatedAt); err != nil {
		return errors.Wrap(err, "insert suspension")
	}

	return nil
}
