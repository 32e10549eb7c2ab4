package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newMatchFixture(matches []match.Match) (*MatchService, *memory.MatchRepository) {
	matchRepo := memory.NewMatchRepository(matches)
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo"},
		{ID: "team-2", Name: "Atletico"},
	})
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "Gil", Position: player.PositionFWD, Price: 1, TeamID: "team-1"},
		{ID: "p2", Name: "Castro", Position: player.PositionGK, Price: 1, TeamID: "team-1"},
	})

	return NewMatchService(matchRepo, teamRepo, playerRepo, &seqIDGenerator{prefix: "ev"}, testLogger()), matchRepo
}

func TestMatchService_ScheduleMatch_RejectsSelfPlay(t *testing.T) {
	t.Parallel()

	service, _ := newMatchFixture(nil)

	_, err := service.ScheduleMatch(context.Background(), ScheduleMatchInput{
		HomeTeamID: "team-1",
		AwayTeamID: "team-1",
		KickoffAt:  time.Now(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestMatchService_AppendEvent_RejectsForeignTeam(t *testing.T) {
	t.Parallel()

	service, _ := newMatchFixture([]match.Match{
		{ID: "m1", HomeTeamID: "team-1", AwayTeamID: "team-2", Status: match.StatusLive},
	})

	_, err := service.AppendEvent(context.Background(), AppendEventInput{
		MatchID: "m1",
		Type:    match.EventGoal,
		Minute:  10,
		TeamID:  "team-3",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestMatchService_MatchDetail_BuildsTimelineAndLineups(t *testing.T) {
	t.Parallel()

	service, matchRepo := newMatchFixture([]match.Match{
		{ID: "m1", HomeTeamID: "team-1", AwayTeamID: "team-2", Status: match.StatusFinished, HomeScore: 2, AwayScore: 0},
	})

	ctx := context.Background()
	for _, ev := range []match.Event{
		{ID: "e1", MatchID: "m1", Type: match.EventGoal, Minute: 40, TeamID: "team-1", PlayerID: "p1"},
		{ID: "e2", MatchID: "m1", Type: match.EventYellowCard, Minute: 12, TeamID: "team-2", PlayerID: "x"},
	} {
		if err := matchRepo.AppendEvent(ctx, ev); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	if err := service.SetLineups(ctx, SetLineupsInput{
		MatchID: "m1",
		TeamID:  "team-1",
		Players: []LineupPlayerInput{
			{PlayerID: "p1", IsStarter: true},
			{PlayerID: "p2", IsStarter: false},
		},
	}); err != nil {
		t.Fatalf("set lineups: %v", err)
	}

	detail, err := service.MatchDetail(ctx, "m1")
	if err != nil {
		t.Fatalf("match detail: %v", err)
	}

	if len(detail.Timeline.HomeGoals) != 1 {
		t.Fatalf("home goals = %d, want 1", len(detail.Timeline.HomeGoals))
	}
	if len(detail.Timeline.AwayCards) != 1 {
		t.Fatalf("away cards = %d, want 1", len(detail.Timeline.AwayCards))
	}
	if len(detail.HomeStarters) != 1 || detail.HomeStarters[0].PlayerID != "p1" {
		t.Fatalf("home starters = %+v", detail.HomeStarters)
	}
	if len(detail.HomeBench) != 1 || detail.HomeBench[0].PlayerID != "p2" {
		t.Fatalf("home bench = %+v", detail.HomeBench)
	}

	// Scores come from the match row even when events undercount them.
	if detail.Match.HomeScore != 2 {
		t.Fatalf("home score = %d, want 2", detail.Match.HomeScore)
	}
}
