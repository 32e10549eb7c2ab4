package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/player"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

const defaultPlayerListLimit = 50

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"position",
	"price",
	"market_value",
	"team_id",
	"is_on_market",
	"linked_user_id",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	orderBy := "id"
	switch filter.Sort {
	case player.SortByPrice:
		orderBy = "price DESC, id"
	case player.SortByMarketValue:
		orderBy = "market_value DESC, id"
	case player.SortByName:
		orderBy = "name, id"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPlayerListLimit
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy(orderBy).
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by team")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build select player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "get player")
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerRowFrom(p), "")
	if err != nil {
		return errors.Wrap(err, "build insert player query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert player")
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("position", string(p.Position)).
		Set("price", p.Price).
		Set("market_value", p.MarketValue).
		Set("team_id", p.TeamID).
		Set("is_on_market", p.IsOnMarket).
		Set("linked_user_id", p.LinkedUserID).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update player query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update player")
	}

	return nil
}

func playerRowFrom(p player.Player) playerTableModel {
	return playerTableModel{
		ID:           p.ID,
		Name:         p.Name,
		Position:     string(p.Position),
		Price:        p.Price,
		MarketValue:  p.MarketValue,
		TeamID:       p.TeamID,
		IsOnMarket:   p.IsOnMarket,
		LinkedUserID: p.LinkedUserID,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		Position:     player.Position(row.Position),
		Price:        row.Price,
		MarketValue:  row.MarketValue,
		TeamID:       row.TeamID,
		IsOnMarket:   row.IsOnMarket,
		LinkedUserID: row.LinkedUserID,
	}
}
