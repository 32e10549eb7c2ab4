package wildcard

import (
	"fmt"
	"strings"
)

// Wildcard is a named special-effect card held by a team. There is no effect
// engine; Used is a manually-set flag.
type Wildcard struct {
	ID          string
	Name        string
	Description string
	Effect      string
	Price       int64
	TeamID      string
	Used        bool
}

func (w Wildcard) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("wildcard id is required")
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("wildcard name is required")
	}
	if w.TeamID == "" {
		return fmt.Errorf("wildcard team id is required")
	}

	return nil
}
