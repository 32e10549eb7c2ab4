package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/award"
)

type AwardRepository struct {
	db *sqlx.DB
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) List(ctx context.Context) ([]award.SeasonAward, error) {
	const query = `
SELECT id, season, category, player_id, team_id
FROM season_awards
ORDER BY season DESC, id`

	var rows []struct {
		ID       string `db:"id"`
		Season   string `db:"season"`
		Category string `db:"category"`
		PlayerID string `db:"player_id"`
		TeamID   string `db:"team_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "select awards")
	}

	out := make([]award.SeasonAward, 0, len(rows))
	for _, row := range rows {
		out = append(out, award.SeasonAward{
			ID:       row.ID,
			Season:   row.Season,
			Category: row.Category,
			PlayerID: row.PlayerID,
			TeamID:   row.TeamID,
		})
	}

	return out, nil
}

func (r *AwardRepository) Create(ctx context.Context, a award.SeasonAward) error {
	const query = `
INSERT INTO season_awards (id, season, category, player_id, team_id)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Season, a.Category, a.PlayerID, a.TeamID); err != nil {
		return errors.Wrap(err, "insert award")
	}

	return nil
}
