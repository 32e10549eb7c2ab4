package award

import (
	"fmt"
	"strings"
)

// SeasonAward records an end-of-season distinction (top scorer, best keeper,
// MVP and the like) for a player or a team.
type SeasonAward struct {
	ID       string
	Season   string
	Category string
	PlayerID string
	TeamID   string
}

func (a SeasonAward) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("award id is required")
	}
	if strings.TrimSpace(a.Season) == "" {
		return fmt.Errorf("award season is required")
	}
	if strings.TrimSpace(a.Category) == "" {
		return fmt.Errorf("award category is required")
	}
	if a.PlayerID == "" && a.TeamID == "" {
		return fmt.Errorf("award needs a player or a team")
	}

	return nil
}
