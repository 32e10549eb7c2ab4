package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
)

const (
	ExportUsers   = "users"
	ExportTeams   = "teams"
	ExportPlayers = "players"
	ExportMatches = "matches"
)

const exportListLimit = 1000

// ExportService renders league data as CSV downloads for the admin panel.
type ExportService struct {
	userRepo   user.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewExportService(userRepo user.Repository, teamRepo team.Repository, playerRepo player.Repository, matchRepo match.Repository) *ExportService {
	return &ExportService{
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

// Export returns the CSV body and suggested filename for one export type.
func (s *ExportService) Export(ctx context.Context, exportType string) ([]byte, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Export")
	defer span.End()

	var records [][]string
	var err error
	switch exportType {
	case ExportUsers:
		records, err = s.userRecords(ctx)
	case ExportTeams:
		records, err = s.teamRecords(ctx)
	case ExportPlayers:
		records, err = s.playerRecords(ctx)
	case ExportMatches:
		records, err = s.matchRecords(ctx)
	default:
		return nil, "", fmt.Errorf("%w: unknown export type %q", ErrInvalidInput, exportType)
	}
	if err != nil {
		return nil, "", err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, "", fmt.Errorf("write csv: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	body := append([]byte(nil), buf.Bytes()...)
	return body, exportType + ".csv", nil
}

func (s *ExportService) userRecords(ctx context.Context) ([][]string, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := [][]string{{"id", "name", "email", "role"}}
	for _, u := range users {
		records = append(records, []string{u.ID, u.Name, u.Email, string(u.Role)})
	}

	return records, nil
}

func (s *ExportService) teamRecords(ctx context.Context) ([][]string, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	// Wallet balances stay out of the download; the sheet is shared with
	// students.
	records := [][]string{{"id", "name", "owner_id", "points", "wins", "draws", "losses", "goals_for", "goals_against"}}
	for _, t := range teams {
		records = append(records, []string{
			t.ID,
			t.Name,
			t.OwnerID,
			strconv.Itoa(t.Points),
			strconv.Itoa(t.Wins),
			strconv.Itoa(t.Draws),
			strconv.Itoa(t.Losses),
			strconv.Itoa(t.GoalsFor),
			strconv.Itoa(t.GoalsAgainst),
		})
	}

	return records, nil
}

func (s *ExportService) playerRecords(ctx context.Context) ([][]string, error) {
	players, err := s.playerRepo.List(ctx, player.ListFilter{Limit: exportListLimit})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	records := [][]string{{"id", "name", "position", "price", "market_value", "team_id", "is_on_market"}}
	for _, p := range players {
		records = append(records, []string{
			p.ID,
			p.Name,
			string(p.Position),
			strconv.FormatInt(p.Price, 10),
			strconv.FormatInt(p.MarketValue, 10),
			p.TeamID,
			strconv.FormatBool(p.IsOnMarket),
		})
	}

	return records, nil
}

func (s *ExportService) matchRecords(ctx context.Context) ([][]string, error) {
	matches, err := s.matchRepo.List(ctx, match.ListFilter{Limit: exportListLimit})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	records := [][]string{{"id", "home_team_id", "away_team_id", "kickoff_at", "status", "home_score", "away_score"}}
	for _, m := range matches {
		records = append(records, []string{
			m.ID,
			m.HomeTeamID,
			m.AwayTeamID,
			m.KickoffAt.UTC().Format(time.RFC3339),
			m.Status,
			strconv.Itoa(m.HomeScore),
			strconv.Itoa(m.AwayScore),
		})
	}

	return records, nil
}
