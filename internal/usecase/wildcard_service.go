package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateWildcardInput struct {
	Name        string
	Description string
	Effect      string
	Price       int64
	TeamID      string
}

type WildcardService struct {
	wildcardRepo wildcard.Repository
	teamRepo     team.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewWildcardService(wildcardRepo wildcard.Repository, teamRepo team.Repository, idGen id.Generator, logger *logging.Logger) *WildcardService {
	return &WildcardService{
		wildcardRepo: wildcardRepo,
		teamRepo:     teamRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *WildcardService) ListWildcards(ctx context.Context) ([]wildcard.Wildcard, error) {
	cards, err := s.wildcardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wildcards: %w", err)
	}

	return cards, nil
}

func (s *WildcardService) ListWildcardsByTeam(ctx context.Context, teamID string) ([]wildcard.Wildcard, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	cards, err := s.wildcardRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list wildcards by team: %w", err)
	}

	return cards, nil
}

func (s *WildcardService) CreateWildcard(ctx context.Context, input CreateWildcardInput) (wildcard.Wildcard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WildcardService.CreateWildcard")
	defer span.End()

	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return wildcard.Wildcard{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	wildcardID, err := s.idGen.NewID()
	if err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("generate wildcard id: %w", err)
	}

	w := wildcard.Wildcard{
		ID:          wildcardID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Effect:      strings.TrimSpace(input.Effect),
		Price:       input.Price,
		TeamID:      input.TeamID,
	}
	if err := w.Validate(); err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.wildcardRepo.Create(ctx, w); err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("create wildcard: %w", err)
	}

	s.logger.InfoContext(ctx, "wildcard created", "wildcard_id", w.ID, "team_id", w.TeamID)

	return w, nil
}

// UseWildcard burns a card. Only the owning president can spend it, and a
// spent card stays spent.
func (s *WildcardService) UseWildcard(ctx context.Context, userID, wildcardID string) (wildcard.Wildcard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WildcardService.UseWildcard")
	defer span.End()

	w, exists, err := s.wildcardRepo.GetByID(ctx, wildcardID)
	if err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("get wildcard: %w", err)
	}
	if !exists {
		return wildcard.Wildcard{}, fmt.Errorf("%w: wildcard=%s", ErrNotFound, wildcardID)
	}

	t, exists, err := s.teamRepo.GetByOwner(ctx, userID)
	if err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("get team by owner: %w", err)
	}
	if !exists || t.ID != w.TeamID {
		return wildcard.Wildcard{}, fmt.Errorf("%w: wildcard belongs to another team", ErrUnauthorized)
	}

	if w.Used {
		return wildcard.Wildcard{}, fmt.Errorf("%w: wildcard already used", ErrInvalidInput)
	}

	if err := s.wildcardRepo.MarkUsed(ctx, w.ID); err != nil {
		return wildcard.Wildcard{}, fmt.Errorf("mark wildcard used: %w", err)
	}
	w.Used = true

	s.logger.InfoContext(ctx, "wildcard used", "wildcard_id", w.ID, "team_id", w.TeamID)

	return w, nil
}
