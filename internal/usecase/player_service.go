package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

const maxPlayerListLimit = 200

type CreatePlayerInput struct {
	Name         string
	Position     string
	Price        int64
	MarketValue  int64
	TeamID       string
	IsOnMarket   bool
	LinkedUserID string
}

// UpdatePlayerInput carries partial updates; nil fields are left untouched.
type UpdatePlayerInput struct {
	Name        *string
	Position    *string
	Price       *int64
	MarketValue *int64
	TeamID      *string
	IsOnMarket  *bool
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen id.Generator, logger *logging.Logger) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, sortKey string, limit int) ([]player.Player, error) {
	switch sortKey {
	case "", player.SortByName, player.SortByPrice, player.SortByMarketValue:
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, sortKey)
	}
	if limit > maxPlayerListLimit {
		limit = maxPlayerListLimit
	}

	players, err := s.playerRepo.List(ctx, player.ListFilter{Sort: sortKey, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// Market lists players currently flagged for sale.
func (s *PlayerService) Market(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx, player.ListFilter{Limit: maxPlayerListLimit})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.IsOnMarket {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	if strings.TrimSpace(playerID) == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	position, err := player.ParsePosition(input.Position)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teamID := strings.TrimSpace(input.TeamID)
	if teamID != "" {
		if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return player.Player{}, fmt.Errorf("get team: %w", err)
		} else if !exists {
			return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:           playerID,
		Name:         strings.TrimSpace(input.Name),
		Position:     position,
		Price:        input.Price,
		MarketValue:  input.MarketValue,
		TeamID:       teamID,
		IsOnMarket:   input.IsOnMarket,
		LinkedUserID: strings.TrimSpace(input.LinkedUserID),
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "team_id", teamID)

	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Position != nil {
		position, err := player.ParsePosition(*input.Position)
		if err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Position = position
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.MarketValue != nil {
		p.MarketValue = *input.MarketValue
	}
	if input.TeamID != nil {
		teamID := strings.TrimSpace(*input.TeamID)
		if teamID != "" {
			if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
				return player.Player{}, fmt.Errorf("get team: %w", err)
			} else if !exists {
				return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
			}
		}
		p.TeamID = teamID
	}
	if input.IsOnMarket != nil {
		p.IsOnMarket = *input.IsOnMarket
	}

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", p.ID)

	return p, nil
}
