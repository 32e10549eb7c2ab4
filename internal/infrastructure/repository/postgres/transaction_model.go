package postgres

import "time"

type transactionTableModel struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	Type        string    `db:"type"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	ReviewedBy  string    `db:"reviewed_by"`
	CreatedAt   time.Time `db:"created_at"`
}
