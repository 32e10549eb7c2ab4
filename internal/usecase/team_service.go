package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateTeamInput struct {
	Name       string
	OwnerID    string
	EurosKings int64
}

type TeamDetail struct {
	Team    team.Team
	Players []player.Player
}

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	userRepo   user.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	userRepo user.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// Standings returns teams ordered by points, then goal difference, then
// goals scored.
func (s *TeamService) Standings(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	sort.SliceStable(teams, func(i, j int) bool { return team.SortByStandings(teams[i], teams[j]) })

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (TeamDetail, error) {
	if strings.TrimSpace(teamID) == "" {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("list team players: %w", err)
	}

	return TeamDetail{Team: t, Players: players}, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.EurosKings < 0 {
		return team.Team{}, fmt.Errorf("%w: starting balance cannot be negative", ErrInvalidInput)
	}

	if _, exists, err := s.teamRepo.GetByName(ctx, name); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: team name already taken", ErrInvalidInput)
	}

	ownerID := strings.TrimSpace(input.OwnerID)
	if ownerID != "" {
		owner, exists, err := s.userRepo.GetByID(ctx, ownerID)
		if err != nil {
			return team.Team{}, fmt.Errorf("get owner: %w", err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: owner=%s", ErrNotFound, ownerID)
		}
		if owner.Role != user.RolePresidente {
			return team.Team{}, fmt.Errorf("%w: owner must be a presidente", ErrInvalidInput)
		}
		if _, owns, err := s.teamRepo.GetByOwner(ctx, ownerID); err != nil {
			return team.Team{}, fmt.Errorf("get team by owner: %w", err)
		} else if owns {
			return team.Team{}, fmt.Errorf("%w: owner already has a team", ErrInvalidInput)
		}
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	t := team.Team{
		ID:         teamID,
		Name:       name,
		OwnerID:    ownerID,
		EurosKings: input.EurosKings,
	}
	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", t.ID, "owner_id", ownerID)

	return t, nil
}
