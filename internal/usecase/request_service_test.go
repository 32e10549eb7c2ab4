package usecase

import (
	"context"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newRequestFixture(requests []request.Request) (*RequestService, *memory.TeamRepository) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo", OwnerID: "pres-1", EurosKings: 100},
	})
	requestRepo := memory.NewRequestRepository(requests)

	return NewRequestService(requestRepo, teamRepo, &seqIDGenerator{prefix: "req"}, testLogger()), teamRepo
}

func TestRequestService_SubmitRequest_ResolvesOwnTeam(t *testing.T) {
	t.Parallel()

	service, _ := newRequestFixture(nil)

	rq, err := service.SubmitRequest(context.Background(), SubmitRequestInput{
		Type:   request.TypeWildcard,
		UserID: "pres-1",
		Data:   []byte(`{"wildcard":"doble-puntos"}`),
	})
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}
	if rq.TeamID != "team-1" {
		t.Fatalf("team id = %s, want team-1", rq.TeamID)
	}
	if rq.Status != request.StatusPending {
		t.Fatalf("status = %s, want pending", rq.Status)
	}
}

func TestRequestService_ReviewRequest_StampsWithoutSideEffects(t *testing.T) {
	t.Parallel()

	service, teamRepo := newRequestFixture([]request.Request{
		{ID: "req-1", Type: request.TypeWildcard, UserID: "pres-1", TeamID: "team-1", Status: request.StatusPending},
	})

	rq, err := service.ReviewRequest(context.Background(), ReviewRequestInput{
		RequestID: "req-1", Status: request.StatusApproved, ReviewerID: "admin-1",
	})
	if err != nil {
		t.Fatalf("review request: %v", err)
	}
	if rq.Status != request.StatusApproved || rq.ReviewedBy != "admin-1" {
		t.Fatalf("reviewed request = %+v", rq)
	}

	// Approving the request grants nothing by itself.
	if balance := teamBalance(t, teamRepo, "team-1"); balance != 100 {
		t.Fatalf("balance = %d, want 100 untouched", balance)
	}
}

func TestRequestService_ReviewRequest_ReReviewRewritesStamp(t *testing.T) {
	t.Parallel()

	service, _ := newRequestFixture([]request.Request{
		{ID: "req-1", Type: request.TypeWildcard, UserID: "pres-1", Status: request.StatusApproved, ReviewedBy: "admin-1"},
	})

	rq, err := service.ReviewRequest(context.Background(), ReviewRequestInput{
		RequestID: "req-1", Status: request.StatusRejected, ReviewerID: "admin-2",
	})
	if err != nil {
		t.Fatalf("re-review request: %v", err)
	}
	if rq.Status != request.StatusRejected || rq.ReviewedBy != "admin-2" {
		t.Fatalf("re-reviewed request = %+v", rq)
	}
}
