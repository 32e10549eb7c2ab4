package postgres

import (
	"encoding/json"
	"time"
)

type requestTableModel struct {
	ID         string          `db:"id"`
	Type       string          `db:"type"`
	UserID     string          `db:"user_id"`
	TeamID     string          `db:"team_id"`
	Data       json.RawMessage `db:"data"`
	Status     string          `db:"status"`
	ReviewedBy string          `db:"reviewed_by"`
	CreatedAt  time.Time       `db:"created_at"`
}
