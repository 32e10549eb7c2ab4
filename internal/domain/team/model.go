package team

import (
	"fmt"
	"strings"
)

// Team is a school club with its wallet and standings counters.
// EurosKings is the in-game currency balance in whole units.
type Team struct {
	ID           string
	Name         string
	OwnerID      string
	EurosKings   int64
	Points       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// SortByStandings orders teams by points, then goal difference, then goals
// scored, all descending. The sort must be stable so equal teams keep their
// stored order.
func SortByStandings(a, b Team) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference() != b.GoalDifference() {
		return a.GoalDifference() > b.GoalDifference()
	}
	return a.GoalsFor > b.GoalsFor
}
