package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/market"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type TransferRepository struct {
	db *sqlx.DB
}

var transferSelectColumns = []string{
	"id",
	"player_id",
	"from_team_id",
	"to_team_id",
	"price",
	"status",
	"created_at",
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) List(ctx context.Context, status string) ([]market.Transfer, error) {
	builder := qb.Select(transferSelectColumns...).From("transfers").
		OrderBy("created_at DESC", "id")
	if status != "" {
		builder = builder.Where(qb.Eq("status", status))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transfers query")
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select transfers")
	}

	return transfersFromRows(rows), nil
}

func (r *TransferRepository) ListByTeam(ctx context.Context, teamID string) ([]market.Transfer, error) {
	query, args, err := qb.Select(transferSelectColumns...).From("transfers").
		Where(qb.Expr("(to_team_id = ? OR from_team_id = ?)", teamID, teamID)).
		OrderBy("created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transfers by team query")
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select transfers by team")
	}

	return transfersFromRows(rows), nil
}

func (r *TransferRepository) GetByID(ctx context.Context, transferID string) (market.Transfer, bool, error) {
	query, args, err := qb.Select(transferSelectColumns...).From("transfers").
		Where(qb.Eq("id", transferID)).
		ToSQL()
	if err != nil {
		return market.Transfer{}, false, errors.Wrap(err, "build select transfer query")
	}

	var row transferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return market.Transfer{}, false, nil
		}
		return market.Transfer{}, false, errors.Wrap(err, "get transfer")
	}

	return transferFromRow(row), true, nil
}

func (r *TransferRepository) Create(ctx context.Context, t market.Transfer) error {
	query, args, err := qb.InsertModel("transfers", transferTableModel{
		ID:         t.ID,
		PlayerID:   t.PlayerID,
		FromTeamID: t.FromTeamID,
		ToTeamID:   t.ToTeamID,
		Price:      t.Price,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert transfer query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert transfer")
	}

	return nil
}

func transfersFromRows(rows []transferTableModel) []market.Transfer {
	out := make([]market.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, transferFromRow(row))
	}
	return out
}

func transferFromRow(row transferTableModel) market.Transfer {
	return market.Transfer{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		FromTeamID: row.FromTeamID,
		ToTeamID:   row.ToTeamID,
		Price:      row.Price,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
	}
}
