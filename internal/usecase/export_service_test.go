package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"reflect"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/match"
	"github.com/ligaescolar/kings-api/internal/domain/player"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newExportFixture() *ExportService {
	return NewExportService(
		memory.NewUserRepository([]user.User{
			{ID: "u1", Name: "Marta", Email: "marta@test", Role: user.RoleAdmin},
		}),
		memory.NewTeamRepository([]team.Team{
			{ID: "t1", Name: "Rayo", OwnerID: "u2", EurosKings: 500, Points: 7, Wins: 2, Draws: 1, GoalsFor: 8, GoalsAgainst: 3},
		}),
		memory.NewPlayerRepository([]player.Player{
			{ID: "p1", Name: "Gil", Position: player.PositionFWD, Price: 100, MarketValue: 105, TeamID: "t1"},
		}),
		memory.NewMatchRepository([]match.Match{
			{ID: "m1", HomeTeamID: "t1", AwayTeamID: "t2", Status: match.StatusScheduled},
		}),
	)
}

func TestExportService_TeamsHeaderHasNineColumns(t *testing.T) {
	t.Parallel()

	service := newExportFixture()

	body, filename, err := service.Export(context.Background(), ExportTeams)
	if err != nil {
		t.Fatalf("export teams: %v", err)
	}
	if filename != "teams.csv" {
		t.Fatalf("filename = %s", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}

	wantHeader := []string{"id", "name", "owner_id", "points", "wins", "draws", "losses", "goals_for", "goals_against"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header = %v, want %v", records[0], wantHeader)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}
	// eurosKings must not leak into the sheet.
	for _, cell := range records[1] {
		if cell == "500" {
			t.Fatalf("wallet balance leaked into teams export: %v", records[1])
		}
	}
}

func TestExportService_UsersColumns(t *testing.T) {
	t.Parallel()

	service := newExportFixture()

	body, _, err := service.Export(context.Background(), ExportUsers)
	if err != nil {
		t.Fatalf("export users: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}

	wantHeader := []string{"id", "name", "email", "role"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header = %v, want %v", records[0], wantHeader)
	}
	wantRow := []string{"u1", "Marta", "marta@test", "admin"}
	if !reflect.DeepEqual(records[1], wantRow) {
		t.Fatalf("row = %v, want %v", records[1], wantRow)
	}
}

func TestExportService_UnknownType(t *testing.T) {
	t.Parallel()

	service := newExportFixture()

	_, _, err := service.Export(context.Background(), "wallets")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
