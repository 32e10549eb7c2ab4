package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

func newLedgerFixture(transactions []ledger.Transaction) (*LedgerService, *memory.TeamRepository) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", Name: "Rayo", OwnerID: "pres-1", EurosKings: 100},
	})
	transactionRepo := memory.NewTransactionRepository(transactions)

	service := NewLedgerService(transactionRepo, teamRepo, &seqIDGenerator{prefix: "tx"}, testLogger())

	return service, teamRepo
}

func TestLedgerService_ReviewTransaction_ApproveDebitsOnce(t *testing.T) {
	t.Parallel()

	service, teamRepo := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Status: ledger.StatusPending},
	})

	got, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1",
		Status:        ledger.StatusApproved,
		ReviewerID:    "admin-1",
	})
	if err != nil {
		t.Fatalf("review transaction: %v", err)
	}
	if got.Status != ledger.StatusApproved || got.ReviewedBy != "admin-1" {
		t.Fatalf("reviewed row = %+v", got)
	}

	balance := teamBalance(t, teamRepo, "team-1")
	if balance != 40 {
		t.Fatalf("balance = %d, want 40", balance)
	}
}

func TestLedgerService_ReviewTransaction_ReReviewRewritesWithoutSecondDebit(t *testing.T) {
	t.Parallel()

	service, teamRepo := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Status: ledger.StatusPending},
	})

	if _, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1", Status: ledger.StatusApproved, ReviewerID: "admin-1",
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}

	got, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1", Status: ledger.StatusApproved, ReviewerID: "admin-2",
	})
	if err != nil {
		t.Fatalf("second review: %v", err)
	}

	// The stamp is rewritten but the wallet moves only once.
	if got.ReviewedBy != "admin-2" {
		t.Fatalf("reviewer = %s, want admin-2", got.ReviewedBy)
	}
	if balance := teamBalance(t, teamRepo, "team-1"); balance != 40 {
		t.Fatalf("balance = %d, want 40 after single debit", balance)
	}
}

func TestLedgerService_ReviewTransaction_RejectLeavesWallet(t *testing.T) {
	t.Parallel()

	service, teamRepo := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Status: ledger.StatusPending},
	})

	got, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1", Status: ledger.StatusRejected, ReviewerID: "admin-1",
	})
	if err != nil {
		t.Fatalf("review transaction: %v", err)
	}
	if got.Status != ledger.StatusRejected {
		t.Fatalf("status = %s, want rejected", got.Status)
	}

	if balance := teamBalance(t, teamRepo, "team-1"); balance != 100 {
		t.Fatalf("balance = %d, want 100 untouched", balance)
	}
}

func TestLedgerService_ReviewTransaction_InvestmentApprovalIsNoOp(t *testing.T) {
	t.Parallel()

	service, teamRepo := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeInvestment, Amount: 60, Status: ledger.StatusPending},
	})

	if _, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1", Status: ledger.StatusApproved, ReviewerID: "admin-1",
	}); err != nil {
		t.Fatalf("review transaction: %v", err)
	}

	if balance := teamBalance(t, teamRepo, "team-1"); balance != 100 {
		t.Fatalf("balance = %d, want 100 for investment approval", balance)
	}
}

func TestLedgerService_ReviewTransaction_TwoApprovalsCanGoNegative(t *testing.T) {
	t.Parallel()

	service, teamRepo := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 70, Status: ledger.StatusPending},
		{ID: "tx-2", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 70, Status: ledger.StatusPending},
	})

	for _, id := range []string{"tx-1", "tx-2"} {
		if _, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
			TransactionID: id, Status: ledger.StatusApproved, ReviewerID: "admin-1",
		}); err != nil {
			t.Fatalf("review %s: %v", id, err)
		}
	}

	// Both rows passed their offer-time checks independently; approval has
	// no floor.
	if balance := teamBalance(t, teamRepo, "team-1"); balance != -40 {
		t.Fatalf("balance = %d, want -40", balance)
	}
}

func TestLedgerService_ReviewTransaction_InvalidStatus(t *testing.T) {
	t.Parallel()

	service, _ := newLedgerFixture([]ledger.Transaction{
		{ID: "tx-1", TeamID: "team-1", Type: ledger.TypeTransfer, Amount: 60, Status: ledger.StatusPending},
	})

	_, err := service.ReviewTransaction(context.Background(), ReviewTransactionInput{
		TransactionID: "tx-1", Status: "pending", ReviewerID: "admin-1",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func teamBalance(t *testing.T, repo *memory.TeamRepository, teamID string) int64 {
	t.Helper()
	got, exists, err := repo.GetByID(context.Background(), teamID)
	if err != nil || !exists {
		t.Fatalf("get team %s: exists=%v err=%v", teamID, exists, err)
	}
	return got.EurosKings
}
