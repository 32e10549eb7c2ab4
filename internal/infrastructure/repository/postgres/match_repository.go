package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	qb "github.com/ligaescolar/kings-api/internal/platform/querybuilder"
)

const defaultMatchListLimit = 50

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"home_team_id",
	"away_team_id",
	"kickoff_at",
	"status",
	"home_score",
	"away_score",
	"mvp_player_id",
}

var matchEventSelectColumns = []string{
	"id",
	"match_id",
	"type",
	"minute",
	"player_id",
	"player_out_id",
	"team_id",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMatchListLimit
	}

	builder := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("kickoff_at", "id").
		Limit(limit)
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", filter.Status))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "build select match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, errors.Wrap(err, "get match")
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel("matches", matchTableModel{
		ID:          m.ID,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		KickoffAt:   m.KickoffAt,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		MVPPlayerID: m.MVPPlayerID,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert match query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert match")
	}

	return nil
}

func (r *MatchRepository) AppendEvent(ctx context.Context, ev match.Event) error {
	query, args, err := qb.InsertModel("match_events", matchEventTableModel{
		ID:          ev.ID,
		MatchID:     ev.MatchID,
		Type:        ev.Type,
		Minute:      ev.Minute,
		PlayerID:    ev.PlayerID,
		PlayerOutID: ev.PlayerOutID,
		TeamID:      ev.TeamID,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build insert match event query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert match event")
	}

	return nil
}

func (r *MatchRepository) ListEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	// seq preserves insertion order so equal minutes keep a stable timeline.
	query, args, err := qb.Select(matchEventSelectColumns...).From("match_events").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select match events query")
	}

	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select match events")
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Event{
			ID:          row.ID,
			MatchID:     row.MatchID,
			Type:        row.Type,
			Minute:      row.Minute,
			PlayerID:    row.PlayerID,
			PlayerOutID: row.PlayerOutID,
			TeamID:      row.TeamID,
		})
	}

	return out, nil
}

func (r *MatchRepository) ReplaceLineups(ctx context.Context, matchID string, entries []match.LineupEntry) error {
	deleteQuery, deleteArgs, err := qb.DeleteFrom("match_lineups").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete match lineups query")
	}
	if _, err := r.db.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return errors.Wrap(err, "delete match lineups")
	}

	if len(entries) == 0 {
		return nil
	}

	builder := qb.InsertInto("match_lineups").
		Columns("match_id", "team_id", "player_id", "is_starter", "position")
	for _, entry := range entries {
		builder = builder.Values(matchID, entry.TeamID, entry.PlayerID, entry.IsStarter, string(entry.Position))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert match lineups query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert match lineups")
	}

	return nil
}

func (r *MatchRepository) ListLineups(ctx context.Context, matchID string) ([]match.LineupEntry, error) {
	query, args, err := qb.Select("match_id", "team_id", "player_id", "is_starter", "position").
		From("match_lineups").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select match lineups query")
	}

	var rows []matchLineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select match lineups")
	}

	out := make([]match.LineupEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.LineupEntry{
			MatchID:   row.MatchID,
			TeamID:    row.TeamID,
			PlayerID:  row.PlayerID,
			IsStarter: row.IsStarter,
			Position:  player.Position(row.Position),
		})
	}

	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
		KickoffAt:   row.KickoffAt,
		Status:      row.Status,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		MVPPlayerID: row.MVPPlayerID,
	}
}
