package market

import (
	"fmt"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Transfer is a president's bid on an on-market player. FromTeamID is empty
// when the player was ownerless at offer time. Price is immutable once the
// offer is created; the money only moves when an admin approves the sibling
// ledger transaction.
type Transfer struct {
	ID         string
	PlayerID   string
	FromTeamID string
	ToTeamID   string
	Price      int64
	Status     string
	CreatedAt  time.Time
}

func (t Transfer) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transfer id is required")
	}
	if t.PlayerID == "" {
		return fmt.Errorf("transfer player id is required")
	}
	if t.ToTeamID == "" {
		return fmt.Errorf("transfer destination team id is required")
	}
	if t.Price <= 0 {
		return fmt.Errorf("transfer price must be positive")
	}

	return nil
}
