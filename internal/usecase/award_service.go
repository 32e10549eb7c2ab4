package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/award"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateAwardInput struct {
	Season   string
	Category string
	PlayerID string
	TeamID   string
}

type AwardService struct {
	awardRepo  award.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewAwardService(awardRepo award.Repository, playerRepo player.Repository, teamRepo team.Repository, idGen id.Generator, logger *logging.Logger) *AwardService {
	return &AwardService{
		awardRepo:  awardRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *AwardService) ListAwards(ctx context.Context) ([]award.SeasonAward, error) {
	awards, err := s.awardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	return awards, nil
}

func (s *AwardService) CreateAward(ctx context.Context, input CreateAwardInput) (award.SeasonAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.CreateAward")
	defer span.End()

	if input.PlayerID != "" {
		if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
			return award.SeasonAward{}, fmt.Errorf("get player: %w", err)
		} else if !exists {
			return award.SeasonAward{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
		}
	}
	if input.TeamID != "" {
		if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
			return award.SeasonAward{}, fmt.Errorf("get team: %w", err)
		} else if !exists {
			return award.SeasonAward{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
		}
	}

	awardID, err := s.idGen.NewID()
	if err != nil {
		return award.SeasonAward{}, fmt.Errorf("generate award id: %w", err)
	}

	a := award.SeasonAward{
		ID:       awardID,
		Season:   strings.TrimSpace(input.Season),
		Category: strings.TrimSpace(input.Category),
		PlayerID: input.PlayerID,
		TeamID:   input.TeamID,
	}
	if err := a.Validate(); err != nil {
		return award.SeasonAward{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.awardRepo.Create(ctx, a); err != nil {
		return award.SeasonAward{}, fmt.Errorf("create award: %w", err)
	}

	s.logger.InfoContext(ctx, "award created", "award_id", a.ID, "category", a.Category)

	return a, nil
}
