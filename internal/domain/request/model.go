package request

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypeWildcard         = "wildcard"
	TypeTeamRegistration = "team_registration"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is a generic approval envelope. Reviewing it changes status and
// reviewer only; no domain side effect is wired (approving a wildcard
// request does not create a Wildcard row).
type Request struct {
	ID         string
	Type       string
	UserID     string
	TeamID     string
	Data       json.RawMessage
	Status     string
	ReviewedBy string
	CreatedAt  time.Time
}

func ValidType(v string) bool {
	return v == TypeWildcard || v == TypeTeamRegistration
}

func ValidReviewStatus(v string) bool {
	return v == StatusApproved || v == StatusRejected
}

func (r Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("request id is required")
	}
	if !ValidType(r.Type) {
		return fmt.Errorf("unknown request type %q", r.Type)
	}
	if r.UserID == "" {
		return fmt.Errorf("request user id is required")
	}

	return nil
}
