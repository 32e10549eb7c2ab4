package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type ScheduleMatchInput struct {
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
}

type AppendEventInput struct {
	MatchID     string
	Type        string
	Minute      int
	PlayerID    string
	PlayerOutID string
	TeamID      string
}

type LineupPlayerInput struct {
	PlayerID  string
	IsStarter bool
}

type SetLineupsInput struct {
	MatchID string
	TeamID  string
	Players []LineupPlayerInput
}

type MatchDetail struct {
	Match        match.Match
	Timeline     match.Timeline
	HomeStarters []match.LineupEntry
	HomeBench    []match.LineupEntry
	AwayStarters []match.LineupEntry
	AwayBench    []match.LineupEntry
}

type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, playerRepo player.Repository, idGen id.Generator, logger *logging.Logger) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, status string, limit int) ([]match.Match, error) {
	if status != "" && !match.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, status)
	}

	matches, err := s.matchRepo.List(ctx, match.ListFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

// MatchDetail rebuilds the timeline from stored events. Scores come from the
// match row; the event list is not reconciled against them, a missing goal
// event just leaves a sparser timeline.
func (s *MatchService) MatchDetail(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.MatchDetail")
	defer span.End()

	if strings.TrimSpace(matchID) == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDetail{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	events, err := s.matchRepo.ListEvents(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match events: %w", err)
	}

	lineups, err := s.matchRepo.ListLineups(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match lineups: %w", err)
	}

	detail := MatchDetail{
		Match:    m,
		Timeline: match.BuildTimeline(m, events),
	}

	var home, away []match.LineupEntry
	for _, entry := range lineups {
		if entry.TeamID == m.HomeTeamID {
			home = append(home, entry)
		} else {
			away = append(away, entry)
		}
	}
	detail.HomeStarters, detail.HomeBench = match.SplitLineup(home)
	detail.AwayStarters, detail.AwayBench = match.SplitLineup(away)

	return detail, nil
}

func (s *MatchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ScheduleMatch")
	defer span.End()

	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.Match{
		ID:         matchID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		KickoffAt:  input.KickoffAt.UTC(),
		Status:     match.StatusScheduled,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match scheduled", "match_id", m.ID, "home_team_id", m.HomeTeamID, "away_team_id", m.AwayTeamID)

	return m, nil
}

func (s *MatchService) AppendEvent(ctx context.Context, input AppendEventInput) (match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AppendEvent")
	defer span.End()

	if !match.ValidEventType(input.Type) {
		return match.Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.Type)
	}
	if input.Minute < 0 {
		return match.Event{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return match.Event{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Event{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}
	if input.TeamID != m.HomeTeamID && input.TeamID != m.AwayTeamID {
		return match.Event{}, fmt.Errorf("%w: team is not playing this match", ErrInvalidInput)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return match.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	ev := match.Event{
		ID:          eventID,
		MatchID:     m.ID,
		Type:        input.Type,
		Minute:      input.Minute,
		PlayerID:    input.PlayerID,
		PlayerOutID: input.PlayerOutID,
		TeamID:      input.TeamID,
	}
	if err := s.matchRepo.AppendEvent(ctx, ev); err != nil {
		return match.Event{}, fmt.Errorf("append match event: %w", err)
	}

	s.logger.InfoContext(ctx, "match event recorded", "match_id", m.ID, "type", ev.Type, "minute", ev.Minute)

	return ev, nil
}

// SetLineups replaces one team's entries for a match, keeping the other
// team's entries intact.
func (s *MatchService) SetLineups(ctx context.Context, input SetLineupsInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetLineups")
	defer span.End()

	m, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}
	if input.TeamID != m.HomeTeamID && input.TeamID != m.AwayTeamID {
		return fmt.Errorf("%w: team is not playing this match", ErrInvalidInput)
	}

	existing, err := s.matchRepo.ListLineups(ctx, input.MatchID)
	if err != nil {
		return fmt.Errorf("list match lineups: %w", err)
	}

	entries := make([]match.LineupEntry, 0, len(existing)+len(input.Players))
	for _, entry := range existing {
		if entry.TeamID != input.TeamID {
			entries = append(entries, entry)
		}
	}
	for _, lp := range input.Players {
		p, exists, err := s.playerRepo.GetByID(ctx, lp.PlayerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, lp.PlayerID)
		}
		entries = append(entries, match.LineupEntry{
			MatchID:   m.ID,
			TeamID:    input.TeamID,
			PlayerID:  p.ID,
			IsStarter: lp.IsStarter,
			Position:  p.Position,
		})
	}

	if err := s.matchRepo.ReplaceLineups(ctx, m.ID, entries); err != nil {
		return fmt.Errorf("replace match lineups: %w", err)
	}

	s.logger.InfoContext(ctx, "match lineups set", "match_id", m.ID, "team_id", input.TeamID, "players", len(input.Players))

	return nil
}
