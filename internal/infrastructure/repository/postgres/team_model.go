package postgres

type teamTableModel struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	OwnerID      string `db:"owner_id"`
	EurosKings   int64  `db:"euros_kings"`
	Points       int    `db:"points"`
	Wins         int    `db:"wins"`
	Draws        int    `db:"draws"`
	Losses       int    `db:"losses"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
}
