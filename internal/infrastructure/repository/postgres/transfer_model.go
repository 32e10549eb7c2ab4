package postgres

import "time"

type transferTableModel struct {
	ID         string    `db:"id"`
	PlayerID   string    `db:"player_id"`
	FromTeamID string    `db:"from_team_id"`
	ToTeamID   string    `db:"to_team_id"`
	Price      int64     `db:"price"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}
