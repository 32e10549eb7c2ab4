package postgres

type playerTableModel struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Position     string `db:"position"`
	Price        int64  `db:"price"`
	MarketValue  int64  `db:"market_value"`
	TeamID       string `db:"team_id"`
	IsOnMarket   bool   `db:"is_on_market"`
	LinkedUserID string `db:"linked_user_id"`
}
