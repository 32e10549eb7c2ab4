package postgres

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/request"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type RequestRepository struct {
	db *sqlx.DB
}

var requestSelectColumns = []string{
	"id",
	"type",
	"user_id",
	"team_id",
	"data",
	"status",
	"reviewed_by",
	"created_at",
}

func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) List(ctx context.Context, status string) ([]request.Request, error) {
	builder := qb.Select(requestSelectColumns...).From("requests").
		OrderBy("created_at DESC", "id")
	if status != "" {
		builder = builder.Where(qb.Eq("status", status))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select requests query")
	}

	var rows []requestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select requests")
	}

	out := make([]request.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestFromRow(row))
	}

	return out, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID string) (request.Request, bool, error) {
	query, args, err := qb.Select(requestSelectColumns...).From("requests").
		Where(qb.Eq("id", requestID)).
		ToSQL()
	if err != nil {
		return request.Request{}, false, errors.Wrap(err, "build select request query")
	}

	var row requestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return request.Request{}, false, nil
		}
		return request.Request{}, false, errors.Wrap(err, "get request")
	}

	return requestFromRow(row), true, nil
}

func (r *RequestRepository) Create(ctx context.Context, rq request.Request) error {
	data := rq.Data
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}

	query, args, err := qb.InsertModel("requests", requestTableModel{
		ID:         rq.ID,
		Type:       rq.Type,
		UserID:     rq.UserID,
		TeamID:     rq.TeamID,
		Data:       data,
		Status:     rq.Status,
		ReviewedBy: rq.ReviewedBy,
		CreatedAt:  rq.CreatedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert request query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert request")
	}

	return nil
}

func (r *RequestRepository) UpdateReview(ctx context.Context, requestID, status, reviewedBy string) error {
	query, args, err := qb.Update("requests").
		Set("status", status).
		Set("reviewed_by", reviewedBy).
		Where(qb.Eq("id", requestID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update request review query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update request review")
	}

	return nil
}

func (r *RequestRepository) CountPending(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("requests").
		Where(qb.Eq("status", request.StatusPending)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count pending requests query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count pending requests")
	}

	return count, nil
}

func requestFromRow(row requestTableModel) request.Request {
	return request.Request{
		ID:         row.ID,
		Type:       row.Type,
		UserID:     row.UserID,
		TeamID:     row.TeamID,
		Data:       row.Data,
		Status:     row.Status,
		ReviewedBy: row.ReviewedBy,
		CreatedAt:  row.CreatedAt,
	}
}
