package usecase

import (
	"context"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/notification"
	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newNotificationFixture() *NotificationService {
	return NewNotificationService(
		memory.NewTransferRepository([]market.Transfer{
			{ID: "tr-1", PlayerID: "p1", ToTeamID: "team-1", Price: 60, Status: market.StatusPending},
			{ID: "tr-2", PlayerID: "p2", ToTeamID: "team-1", Price: 40, Status: market.StatusApproved},
		}),
		memory.NewTransactionRepository([]ledger.Transaction{
			{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Description: "Fichaje", Status: ledger.StatusPending},
			{ID: "tx-2", TeamID: "team-2", Type: ledger.TypeTransfer, Amount: 10, Status: ledger.StatusPending},
		}),
		memory.NewRequestRepository([]request.Request{
			{ID: "rq-1", Type: request.TypeWildcard, UserID: "pres-1", Status: request.StatusPending},
			{ID: "rq-2", Type: request.TypeWildcard, UserID: "pres-2", Status: request.StatusPending},
		}),
		memory.NewTeamRepository([]team.Team{
			{ID: "team-1", Name: "Rayo", OwnerID: "pres-1"},
			{ID: "team-2", Name: "Atletico", OwnerID: "pres-2"},
		}),
	)
}

func TestNotificationService_Feed_Admin(t *testing.T) {
	t.Parallel()

	service := newNotificationFixture()

	feed, err := service.Feed(context.Background(), user.Principal{UserID: "admin-1", Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("admin feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed len = %d, want 2 aggregates", len(feed))
	}

	byID := map[string]notification.Notification{}
	for _, n := range feed {
		byID[n.ID] = n
	}
	if byID[notification.AdminRequestsID].Count != 2 {
		t.Fatalf("pending requests count = %d, want 2", byID[notification.AdminRequestsID].Count)
	}
	if byID[notification.AdminTransactionsID].Count != 2 {
		t.Fatalf("pending transactions count = %d, want 2", byID[notification.AdminTransactionsID].Count)
	}
}

func TestNotificationService_Feed_President(t *testing.T) {
	t.Parallel()

	service := newNotificationFixture()

	feed, err := service.Feed(context.Background(), user.Principal{UserID: "pres-1", Role: user.RolePresidente})
	if err != nil {
		t.Fatalf("president feed: %v", err)
	}

	// One pending transfer and one pending transaction for team-1; the
	// approved transfer and team-2 rows stay out.
	if len(feed) != 2 {
		t.Fatalf("feed len = %d, want 2: %+v", len(feed), feed)
	}
	ids := map[string]bool{}
	for _, n := range feed {
		ids[n.ID] = true
	}
	if !ids["transfer-tr-1"] || !ids["transaction-tx-1"] {
		t.Fatalf("feed ids = %v", ids)
	}
}

func TestNotificationService_Feed_OtherRolesEmpty(t *testing.T) {
	t.Parallel()

	service := newNotificationFixture()

	for _, role := range []user.Role{user.RoleJugador, user.RoleAlumno} {
		feed, err := service.Feed(context.Background(), user.Principal{UserID: "u", Role: role})
		if err != nil {
			t.Fatalf("feed for %s: %v", role, err)
		}
		if len(feed) != 0 {
			t.Fatalf("feed for %s = %+v, want empty", role, feed)
		}
	}
}
