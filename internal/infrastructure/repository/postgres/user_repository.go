package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

var userSelectColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"role",
	"created_at",
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select users query")
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select users")
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}

	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, errors.Wrap(err, "build select user query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, errors.Wrap(err, "get user")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("lower(email)", strings.ToLower(email))).
		ToSQL()
	if err != nil {
		return user.User{}, false, errors.Wrap(err, "build select user by email query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, errors.Wrap(err, "get user by email")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	query, args, err := qb.InsertModel("users", userTableModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert user query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert user")
	}

	return nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         user.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}
}
