package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/notification"
	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

func newNotificationHandler() *Handler {
	service := usecase.NewNotificationService(
		memory.NewTransferRepository([]market.Transfer{
			{ID: "tr-1", PlayerID: "p1", ToTeamID: "team-1", Price: 60, Status: market.StatusPending},
		}),
		memory.NewTransactionRepository([]ledger.Transaction{
			{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Status: ledger.StatusPending},
		}),
		memory.NewRequestRepository([]request.Request{}),
		memory.NewTeamRepository([]team.Team{
			{ID: "team-1", Name: "Rayo", OwnerID: "pres-1"},
		}),
	)

	return NewHandler(Services{Notifications: service}, time.Hour, logging.NewNop())
}

func presidentRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := withPrincipal(req.Context(), user.Principal{UserID: "pres-1", Role: user.RolePresidente})
	return req.WithContext(ctx)
}

func TestListNotifications_UnreadByDefault(t *testing.T) {
	h := newNotificationHandler()

	rec := httptest.NewRecorder()
	h.ListNotifications(rec, presidentRequest(http.MethodGet, "/api/notifications"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var feed []notification.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed len = %d, want 2", len(feed))
	}
	for _, n := range feed {
		if n.Read {
			t.Fatalf("notification %s marked read without a cookie", n.ID)
		}
	}
}

func TestMarkNotificationRead_RoundTrip(t *testing.T) {
	h := newNotificationHandler()

	markReq := presidentRequest(http.MethodPost, "/api/notifications/transfer-tr-1/read")
	markReq.SetPathValue("notificationID", "transfer-tr-1")
	markRec := httptest.NewRecorder()
	h.MarkNotificationRead(markRec, markReq)

	if markRec.Code != http.StatusOK {
		t.Fatalf("mark read status = %d, want 200", markRec.Code)
	}

	cookies := markRec.Result().Cookies()
	var readCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "read_notifications_pres-1" {
			readCookie = c
		}
	}
	if readCookie == nil {
		t.Fatalf("read-state cookie not set, got %v", cookies)
	}
	if readCookie.HttpOnly {
		t.Fatal("read-state cookie must stay readable client-side")
	}

	listReq := presidentRequest(http.MethodGet, "/api/notifications")
	listReq.AddCookie(readCookie)
	listRec := httptest.NewRecorder()
	h.ListNotifications(listRec, listReq)

	var feed []notification.Notification
	if err := json.Unmarshal(listRec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	for _, n := range feed {
		if n.ID == "transfer-tr-1" && !n.Read {
			t.Fatal("transfer-tr-1 should be read after the round trip")
		}
		if n.ID == "transaction-tx-1" && n.Read {
			t.Fatal("transaction-tx-1 was never marked read")
		}
	}
}
