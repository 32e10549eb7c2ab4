package player

import (
	"fmt"
	"strings"
)

// Position is a pitch position in display precedence order.
type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionFWD Position = "FWD"
)

func ParsePosition(v string) (Position, error) {
	switch Position(strings.ToUpper(strings.TrimSpace(v))) {
	case PositionGK:
		return PositionGK, nil
	case PositionDEF:
		return PositionDEF, nil
	case PositionMID:
		return PositionMID, nil
	case PositionFWD:
		return PositionFWD, nil
	default:
		return "", fmt.Errorf("unknown position %q", v)
	}
}

// Rank gives the fixed lineup ordering GK < DEF < MID < FWD.
func (p Position) Rank() int {
	switch p {
	case PositionGK:
		return 0
	case PositionDEF:
		return 1
	case PositionMID:
		return 2
	case PositionFWD:
		return 3
	default:
		return 4
	}
}

// Player belongs to at most one team; an empty TeamID means the player sits
// in the market pool. LinkedUserID ties a jugador account to its player row.
type Player struct {
	ID           string
	Name         string
	Position     Position
	Price        int64
	MarketValue  int64
	TeamID       string
	IsOnMarket   bool
	LinkedUserID string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if _, err := ParsePosition(string(p.Position)); err != nil {
		return err
	}
	if p.Price < 0 {
		return fmt.Errorf("player price cannot be negative")
	}

	return nil
}
