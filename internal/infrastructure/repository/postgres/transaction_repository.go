package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type TransactionRepository struct {
	db *sqlx.DB
}

var transactionSelectColumns = []string{
	"id",
	"team_id",
	"type",
	"amount",
	"description",
	"status",
	"reviewed_by",
	"created_at",
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context, status string) ([]ledger.Transaction, error) {
	builder := qb.Select(transactionSelectColumns...).From("transactions").
		OrderBy("created_at DESC", "id")
	if status != "" {
		builder = builder.Where(qb.Eq("status", status))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transactions query")
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select transactions")
	}

	return transactionsFromRows(rows), nil
}

func (r *TransactionRepository) ListByTeam(ctx context.Context, teamID string) ([]ledger.Transaction, error) {
	query, args, err := qb.Select(transactionSelectColumns...).From("transactions").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select transactions by team query")
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select transactions by team")
	}

	return transactionsFromRows(rows), nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID string) (ledger.Transaction, bool, error) {
	query, args, err := qb.Select(transactionSelectColumns...).From("transactions").
		Where(qb.Eq("id", transactionID)).
		ToSQL()
	if err != nil {
		return ledger.Transaction{}, false, errors.Wrap(err, "build select transaction query")
	}

	var row transactionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ledger.Transaction{}, false, nil
		}
		return ledger.Transaction{}, false, errors.Wrap(err, "get transaction")
	}

	return transactionFromRow(row), true, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t ledger.Transaction) error {
	query, args, err := qb.InsertModel("transactions", transactionTableModel{
		ID:          t.ID,
		TeamID:      t.TeamID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Status:      t.Status,
		ReviewedBy:  t.ReviewedBy,
		CreatedAt:   t.CreatedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert transaction query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert transaction")
	}

	return nil
}

// UpdateReview rewrites status and reviewer without a status guard; repeated
// reviews land as repeated rewrites.
func (r *TransactionRepository) UpdateReview(ctx context.Context, transactionID, status, reviewedBy string) error {
	query, args, err := qb.Update("transactions").
		Set("status", status).
		Set("reviewed_by", reviewedBy).
		Where(qb.Eq("id", transactionID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update transaction review query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update transaction review")
	}

	return nil
}

func (r *TransactionRepository) CountPending(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("transactions").
		Where(qb.Eq("status", ledger.StatusPending)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count pending transactions query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count pending transactions")
	}

	return count, nil
}

func transactionsFromRows(rows []transactionTableModel) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionFromRow(row))
	}
	return out
}

func transactionFromRow(row transactionTableModel) ledger.Transaction {
	return ledger.Transaction{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Type:        row.Type,
		Amount:      row.Amount,
		Description: row.Description,
		Status:      row.Status,
		ReviewedBy:  row.ReviewedBy,
		CreatedAt:   row.CreatedAt,
	}
}
