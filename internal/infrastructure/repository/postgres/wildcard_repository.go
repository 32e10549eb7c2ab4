package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type WildcardRepository struct {
	db *sqlx.DB
}

var wildcardSelectColumns = []string{
	"id",
	"name",
	"description",
	"effect",
	"price",
	"team_id",
	"used",
}

func NewWildcardRepository(db *sqlx.DB) *WildcardRepository {
	return &WildcardRepository{db: db}
}

func (r *WildcardRepository) List(ctx context.Context) ([]wildcard.Wildcard, error) {
	query, args, err := qb.Select(wildcardSelectColumns...).From("wildcards").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select wildcards query")
	}

	var rows []wildcardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select wildcards")
	}

	return wildcardsFromRows(rows), nil
}

func (r *WildcardRepository) ListByTeam(ctx context.Context, teamID string) ([]wildcard.Wildcard, error) {
	query, args, err := qb.Select(wildcardSelectColumns...).From("wildcards").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select wildcards by team query")
	}

	var rows []wildcardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select wildcards by team")
	}

	return wildcardsFromRows(rows), nil
}

func (r *WildcardRepository) GetByID(ctx context.Context, wildcardID string) (wildcard.Wildcard, bool, error) {
	query, args, err := qb.Select(wildcardSelectColumns...).From("wildcards").
		Where(qb.Eq("id", wildcardID)).
		ToSQL()
	if err != nil {
		return wildcard.Wildcard{}, false, errors.Wrap(err, "build select wildcard query")
	}

	var row wildcardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return wildcard.Wildcard{}, false, nil
		}
		return wildcard.Wildcard{}, false, errors.Wrap(err, "get wildcard")
	}

	return wildcardFromRow(row), true, nil
}

func (r *WildcardRepository) Create(ctx context.Context, w wildcard.Wildcard) error {
	query, args, err := qb.InsertModel("wildcards", wildcardTableModel{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Effect:      w.Effect,
		Price:       w.Price,
		TeamID:      w.TeamID,
		Used:        w.Used,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert wildcard query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert wildcard")
	}

	return nil
}

func (r *WildcardRepository) MarkUsed(ctx context.Context, wildcardID string) error {
	query, args, err := qb.Update("wildcards").
		Set("used", true).
		Where(qb.Eq("id", wildcardID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update wildcard query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update wildcard")
	}

	return nil
}

func wildcardsFromRows(rows []wildcardTableModel) []wildcard.Wildcard {
	out := make([]wildcard.Wildcard, 0, len(rows))
	for _, row := range rows {
		out = append(out, wildcardFromRow(row))
	}
	return out
}

func wildcardFromRow(row wildcardTableModel) wildcard.Wildcard {
	return wildcard.Wildcard{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Effect:      row.Effect,
		Price:       row.Price,
		TeamID:      row.TeamID,
		Used:        row.Used,
	}
}
