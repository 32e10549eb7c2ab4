package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newWildcardFixture() *WildcardService {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo", OwnerID: "pres-1"},
		{ID: "team-2", Name: "Atletico", OwnerID: "pres-2"},
	})
	wildcardRepo := memory.NewWildcardRepository([]wildcard.Wildcard{
		{ID: "w1", Name: "Doble Puntos", TeamID: "team-1"},
		{ID: "w2", Name: "Muralla", TeamID: "team-1", Used: true},
	})

	return NewWildcardService(wildcardRepo, teamRepo, &seqIDGenerator{prefix: "w"}, testLogger())
}

func TestWildcardService_UseWildcard(t *testing.T) {
	t.Parallel()

	service := newWildcardFixture()

	w, err := service.UseWildcard(context.Background(), "pres-1", "w1")
	if err != nil {
		t.Fatalf("use wildcard: %v", err)
	}
	if !w.Used {
		t.Fatal("wildcard not marked used")
	}
}

func TestWildcardService_UseWildcard_ForeignOwner(t *testing.T) {
	t.Parallel()

	service := newWildcardFixture()

	_, err := service.UseWildcard(context.Background(), "pres-2", "w1")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestWildcardService_UseWildcard_AlreadyUsed(t *testing.T) {
	t.Parallel()

	service := newWildcardFixture()

	_, err := service.UseWildcard(context.Background(), "pres-1", "w2")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
