package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/team"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"name",
	"owner_id",
	"euros_kings",
	"points",
	"wins",
	"draws",
	"losses",
	"goals_for",
	"goals_against",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		OrderBy("points DESC", "goals_for - goals_against DESC", "goals_for DESC", "name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("id", teamID), "get team")
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Expr("lower(name) = lower(?)", name), "get team by name")
}

func (r *TeamRepository) GetByOwner(ctx context.Context, ownerID string) (team.Team, bool, error) {
	if ownerID == "" {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx, qb.Eq("owner_id", ownerID), "get team by owner")
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition, op string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(cond).
		ToSQL()
	if err != nil {
		return team.Team{}, false, errors.Wrapf(err, "build %s query", op)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, errors.Wrap(err, op)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertModel("teams", teamTableModel{
		ID:           t.ID,
		Name:         t.Name,
		OwnerID:      t.OwnerID,
		EurosKings:   t.EurosKings,
		Points:       t.Points,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert team query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrap(err, "insert team: duplicate")
		}
		return errors.Wrap(err, "insert team")
	}

	return nil
}

// AddToBalance applies a signed delta with no floor; review decisions are
// allowed to push a wallet negative.
func (r *TeamRepository) AddToBalance(ctx context.Context, teamID string, delta int64) error {
	query, args, err := qb.Update("teams").
		SetExpr("euros_kings", "euros_kings + ?", delta).
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update team balance query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update team balance")
	}

	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:           row.ID,
		Name:         row.Name,
		OwnerID:      row.OwnerID,
		EurosKings:   row.EurosKings,
		Points:       row.Points,
		Wins:         row.Wins,
		Draws:        row.Draws,
		Losses:       row.Losses,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
	}
}
