package match

import (
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/player"
)

func TestBuildTimeline_OrdersByMinuteKeepingInsertionOrderOnTies(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", HomeTeamID: "home", AwayTeamID: "away"}
	events := []Event{
		{ID: "e1", Type: EventGoal, Minute: 70, TeamID: "home"},
		{ID: "e2", Type: EventYellowCard, Minute: 10, TeamID: "away"},
		{ID: "e3", Type: EventGoal, Minute: 10, TeamID: "away"},
		{ID: "e4", Type: EventSubstitution, Minute: 46, TeamID: "home"},
	}

	tl := BuildTimeline(m, events)

	gotOrder := make([]string, 0, len(tl.Events))
	for _, ev := range tl.Events {
		gotOrder = append(gotOrder, ev.ID)
	}
	want := []string{"e2", "e3", "e4", "e1"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotOrder, want)
		}
	}
}

func TestBuildTimeline_GroupsPerSide(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", HomeTeamID: "home", AwayTeamID: "away", HomeScore: 2}
	events := []Event{
		{ID: "e1", Type: EventGoal, Minute: 5, TeamID: "home"},
		{ID: "e2", Type: EventGoal, Minute: 50, TeamID: "away"},
		{ID: "e3", Type: EventRedCard, Minute: 60, TeamID: "home"},
		{ID: "e4", Type: EventSubstitution, Minute: 61, TeamID: "away"},
	}

	tl := BuildTimeline(m, events)

	if len(tl.HomeGoals) != 1 || len(tl.AwayGoals) != 1 {
		t.Fatalf("goals = %d/%d, want 1/1", len(tl.HomeGoals), len(tl.AwayGoals))
	}
	if len(tl.HomeCards) != 1 || len(tl.AwayCards) != 0 {
		t.Fatalf("cards = %d/%d, want 1/0", len(tl.HomeCards), len(tl.AwayCards))
	}
	if len(tl.Substitutions) != 1 {
		t.Fatalf("substitutions = %d, want 1", len(tl.Substitutions))
	}

	// HomeScore says 2 but only one goal event exists; the timeline renders
	// what it has.
	if len(tl.HomeGoals) == int(m.HomeScore) {
		t.Fatalf("expected event undercount to survive, got %d goals", len(tl.HomeGoals))
	}
}

func TestSplitLineup_OrdersByPositionPrecedence(t *testing.T) {
	t.Parallel()

	entries := []LineupEntry{
		{PlayerID: "fwd", IsStarter: true, Position: player.PositionFWD},
		{PlayerID: "gk", IsStarter: true, Position: player.PositionGK},
		{PlayerID: "mid", IsStarter: true, Position: player.PositionMID},
		{PlayerID: "bench-def", Position: player.PositionDEF},
		{PlayerID: "bench-gk", Position: player.PositionGK},
	}

	starters, bench := SplitLineup(entries)

	if len(starters) != 3 || starters[0].PlayerID != "gk" || starters[2].PlayerID != "fwd" {
		t.Fatalf("starters = %+v", starters)
	}
	if len(bench) != 2 || bench[0].PlayerID != "bench-gk" {
		t.Fatalf("bench = %+v", bench)
	}
}

func TestMatchValidate_RejectsSelfPlay(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", HomeTeamID: "team-1", AwayTeamID: "team-1", Status: StatusScheduled}
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for a team playing itself")
	}
}
