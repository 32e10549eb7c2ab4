package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newTeamFixture() *TeamService {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo", OwnerID: "pres-1", EurosKings: 100, Points: 6},
		{ID: "team-2", Name: "Atletico", OwnerID: "pres-2", EurosKings: 100, Points: 9},
	})
	playerRepo := memory.NewPlayerRepository(nil)
	userRepo := memory.NewUserRepository([]user.User{
		{ID: "pres-1", Name: "Diego", Email: "diego@test", Role: user.RolePresidente},
		{ID: "pres-2", Name: "Lucia", Email: "lucia@test", Role: user.RolePresidente},
		{ID: "pres-3", Name: "Nuria", Email: "nuria@test", Role: user.RolePresidente},
		{ID: "alumno-1", Name: "Sara", Email: "sara@test", Role: user.RoleAlumno},
	})

	return NewTeamService(teamRepo, playerRepo, userRepo, &seqIDGenerator{prefix: "team"}, testLogger())
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	got, err := service.CreateTeam(context.Background(), CreateTeamInput{
		Name:       "Deportivo Patio",
		OwnerID:    "pres-3",
		EurosKings: 200,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.OwnerID != "pres-3" || got.EurosKings != 200 {
		t.Fatalf("created team = %+v", got)
	}
}

func TestTeamService_CreateTeam_DuplicateName(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	_, err := service.CreateTeam(context.Background(), CreateTeamInput{Name: "rayo", OwnerID: "pres-3"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for case-insensitive duplicate", err)
	}
}

func TestTeamService_CreateTeam_OwnerAlreadyHasTeam(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	_, err := service.CreateTeam(context.Background(), CreateTeamInput{Name: "Nuevo", OwnerID: "pres-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTeamService_CreateTeam_OwnerMustBePresidente(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	_, err := service.CreateTeam(context.Background(), CreateTeamInput{Name: "Nuevo", OwnerID: "alumno-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTeamService_Standings_Order(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	standings, err := service.Standings(context.Background())
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("standings len = %d, want 2", len(standings))
	}
	if standings[0].ID != "team-2" {
		t.Fatalf("leader = %s, want team-2 on points", standings[0].ID)
	}
}
