package postgres

type wildcardTableModel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Effect      string `db:"effect"`
	Price       int64  `db:"price"`
	TeamID      string `db:"team_id"`
	Used        bool   `db:"used"`
}
