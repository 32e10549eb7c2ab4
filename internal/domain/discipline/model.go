package discipline

import (
	"fmt"
	"time"
)

// Suspension bans a player for a number of matches. It is informational:
// nothing blocks a suspended player from appearing in a lineup.
type Suspension struct {
	ID         string
	PlayerID   string
	MatchCount int
	Reason     string
	CreatedAt  time.Time
}

func (s Suspension) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("suspension id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("suspension player id is required")
	}
	if s.MatchCount <= 0 {
		return fmt.Errorf("suspension match count must be positive")
	}

	return nil
}
