package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
	teammock "github.com/ligaescolar/kings-api/internal/mocks/domain/team"
	wildcardmock "github.com/ligaescolar/kings-api/internal/mocks/domain/wildcard"
)

func TestWildcardService_UseWildcard_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wildcardRepo := wildcardmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewWildcardService(wildcardRepo, teamRepo, &seqIDGenerator{prefix: "w"}, testLogger())

	wildcardRepo.
		On("GetByID", mock.Anything, "w1").
		Return(wildcard.Wildcard{ID: "w1", Name: "Doble Puntos", TeamID: "team-1"}, true, nil).
		Once()
	teamRepo.
		On("GetByOwner", mock.Anything, "pres-1").
		Return(team.Team{ID: "team-1", OwnerID: "pres-1"}, true, nil).
		Once()
	wildcardRepo.
		On("MarkUsed", mock.Anything, "w1").
		Return(nil).
		Once()

	got, err := service.UseWildcard(ctx, "pres-1", "w1")
	if err != nil {
		t.Fatalf("use wildcard: %v", err)
	}
	if !got.Used {
		t.Fatal("wildcard not marked used")
	}
}

func TestWildcardService_UseWildcard_RepoFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wildcardRepo := wildcardmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewWildcardService(wildcardRepo, teamRepo, &seqIDGenerator{prefix: "w"}, testLogger())

	storeErr := errors.New("store offline")
	wildcardRepo.
		On("GetByID", mock.Anything, "w1").
		Return(wildcard.Wildcard{}, false, storeErr).
		Once()

	_, err := service.UseWildcard(ctx, "pres-1", "w1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestWildcardService_CreateWildcard_TeamMissingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wildcardRepo := wildcardmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewWildcardService(wildcardRepo, teamRepo, &seqIDGenerator{prefix: "w"}, testLogger())

	teamRepo.
		On("GetByID", mock.Anything, "ghost-team").
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.CreateWildcard(ctx, CreateWildcardInput{
		Name:   "Doble Puntos",
		Price:  100,
		TeamID: "ghost-team",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
