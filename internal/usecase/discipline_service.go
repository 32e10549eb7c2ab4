package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/discipline"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateSuspensionInput struct {
	PlayerID   string
	MatchCount int
	Reason     string
}

type DisciplineService struct {
	suspensionRepo discipline.Repository
	playerRepo     player.Repository
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewDisciplineService(suspensionRepo discipline.Repository, playerRepo player.Repository, idGen id.Generator, logger *logging.Logger) *DisciplineService {
	return &DisciplineService{
		suspensionRepo: suspensionRepo,
		playerRepo:     playerRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *DisciplineService) ListSuspensions(ctx context.Context) ([]discipline.Suspension, error) {
	suspensions, err := s.suspensionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suspensions: %w", err)
	}

	return suspensions, nil
}

func (s *DisciplineService) CreateSuspension(ctx context.Context, input CreateSuspensionInput) (discipline.Suspension, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.CreateSuspension")
	defer span.End()

	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return discipline.Suspension{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return discipline.Suspension{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	suspensionID, err := s.idGen.NewID()
	if err != nil {
		return discipline.Suspension{}, fmt.Errorf("generate suspension id: %w", err)
	}

	suspension := discipline.Suspension{
		ID:         suspensionID,
		PlayerID:   input.PlayerID,
		MatchCount: input.MatchCount,
		Reason:     strings.TrimSpace(input.Reason),
		CreatedAt:  s.now().UTC(),
	}
	if err := suspension.Validate(); err != nil {
		return discipline.Suspension{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.suspensionRepo.Create(ctx, suspension); err != nil {
		return discipline.Suspension{}, fmt.Errorf("create suspension: %w", err)
	}

	s.logger.InfoContext(ctx, "suspension created", "suspension_id", suspension.ID, "player_id", suspension.PlayerID)

	return suspension, nil
}
