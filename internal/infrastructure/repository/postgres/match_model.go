package postgres

import "time"

type matchTableModel struct {
	ID          string    `db:"id"`
	HomeTeamID  string    `db:"home_team_id"`
	AwayTeamID  string    `db:"away_team_id"`
	KickoffAt   time.Time `db:"kickoff_at"`
	Status      string    `db:"status"`
	HomeScore   int       `db:"home_score"`
	AwayScore   int       `db:"away_score"`
	MVPPlayerID string    `db:"mvp_player_id"`
}

type matchEventTableModel struct {
	ID          string `db:"id"`
	MatchID     string `db:"match_id"`
	Type        string `db:"type"`
	Minute      int    `db:"minute"`
	PlayerID    string `db:"player_id"`
	PlayerOutID string `db:"player_out_id"`
	TeamID      string `db:"team_id"`
}

type matchLineupTableModel struct {
	MatchID   string `db:"match_id"`
	TeamID    string `db:"team_id"`
	PlayerID  string `db:"player_id"`
	IsStarter bool   `db:"is_starter"`
	Position  string `db:"position"`
}
