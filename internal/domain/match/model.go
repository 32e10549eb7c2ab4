package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/player"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
)

const (
	EventGoal         = "goal"
	EventYellowCard   = "yellow_card"
	EventRedCard      = "red_card"
	EventSubstitution = "substitution"
)

// Match is one scheduled fixture between two teams. Scores are entered by
// admins and are never reconciled against recorded events.
type Match struct {
	ID          string
	HomeTeamID  string
	AwayTeamID  string
	KickoffAt   time.Time
	Status      string
	HomeScore   int
	AwayScore   int
	MVPPlayerID string
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("a team cannot play itself")
	}
	if !ValidStatus(m.Status) {
		return fmt.Errorf("unknown match status %q", m.Status)
	}

	return nil
}

func ValidStatus(v string) bool {
	switch v {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

func NormalizeStatus(v string) string {
	status := strings.ToLower(strings.TrimSpace(v))
	if status == "" {
		return StatusScheduled
	}
	return status
}

// Event is one timeline entry. PlayerOutID is set only for substitutions.
type Event struct {
	ID          string
	MatchID     string
	Type        string
	Minute      int
	PlayerID    string
	PlayerOutID string
	TeamID      string
}

func ValidEventType(v string) bool {
	switch v {
	case EventGoal, EventYellowCard, EventRedCard, EventSubstitution:
		return true
	default:
		return false
	}
}

// LineupEntry places one player in a match squad. Position is denormalized
// from the player record so lineups can be ordered without extra lookups.
type LineupEntry struct {
	MatchID   string
	TeamID    string
	PlayerID  string
	IsStarter bool
	Position  player.Position
}
