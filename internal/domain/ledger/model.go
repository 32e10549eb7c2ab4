package ledger

import (
	"fmt"
	"time"
)

const (
	TypeTransfer   = "transfer"
	TypeWildcard   = "wildcard"
	TypeInvestment = "investment"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Transaction is one pending charge against a team wallet awaiting admin
// review. pending -> approved and pending -> rejected are both terminal.
type Transaction struct {
	ID          string
	TeamID      string
	Type        string
	Amount      int64
	Description string
	Status      string
	ReviewedBy  string
	CreatedAt   time.Time
}

// DebitsOnApproval reports whether approving this transaction moves money.
// Investments are recorded but have no balance effect.
func (t Transaction) DebitsOnApproval() bool {
	return t.Type == TypeTransfer || t.Type == TypeWildcard
}

func ValidType(v string) bool {
	switch v {
	case TypeTransfer, TypeWildcard, TypeInvestment:
		return true
	default:
		return false
	}
}

func ValidReviewStatus(v string) bool {
	return v == StatusApproved || v == StatusRejected
}

func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.TeamID == "" {
		return fmt.Errorf("transaction team id is required")
	}
	if !ValidType(t.Type) {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive")
	}

	return nil
}
