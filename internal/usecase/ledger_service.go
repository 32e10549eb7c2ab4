package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateTransactionInput struct {
	TeamID      string
	Type        string
	Amount      int64
	Description string
}

type ReviewTransactionInput struct {
	TransactionID string
	Status        string
	ReviewerID    string
}

// LedgerService manages the eurosKings transaction ledger and the admin
// review flow over it.
type LedgerService struct {
	transactionRepo ledger.Repository
	teamRepo        team.Repository
	idGen           id.Generator
	logger          *logging.Logger
	now             func() time.Time
}

func NewLedgerService(transactionRepo ledger.Repository, teamRepo team.Repository, idGen id.Generator, logger *logging.Logger) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		teamRepo:        teamRepo,
		idGen:           idGen,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *LedgerService) ListTransactions(ctx context.Context, status string) ([]ledger.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}

func (s *LedgerService) ListTransactionsByTeam(ctx context.Context, teamID string) ([]ledger.Transaction, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	transactions, err := s.transactionRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by team: %w", err)
	}

	return transactions, nil
}

func (s *LedgerService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (ledger.Transaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.CreateTransaction")
	defer span.End()

	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return ledger.Transaction{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return ledger.Transaction{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	transactionID, err := s.idGen.NewID()
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("generate transaction id: %w", err)
	}

	t := ledger.Transaction{
		ID:          transactionID,
		TeamID:      input.TeamID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Status:      ledger.StatusPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return ledger.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.transactionRepo.Create(ctx, t); err != nil {
		return ledger.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "transaction created", "transaction_id", t.ID, "team_id", t.TeamID, "type", t.Type)

	return t, nil
}

// ReviewTransaction applies an admin decision. The wallet is debited only
// when a transaction leaves pending through an approval and its type moves
// money; investment rows are recorded with no balance effect. The status
// rewrite itself is unguarded, so reviewing an already-reviewed row updates
// status and reviewer without touching the wallet again.
func (s *LedgerService) ReviewTransaction(ctx context.Context, input ReviewTransactionInput) (ledger.Transaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.ReviewTransaction")
	defer span.End()

	if !ledger.ValidReviewStatus(input.Status) {
		return ledger.Transaction{}, fmt.Errorf("%w: review status must be approved or rejected", ErrInvalidInput)
	}

	t, exists, err := s.transactionRepo.GetByID(ctx, input.TransactionID)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	if !exists {
		return ledger.Transaction{}, fmt.Errorf("%w: transaction=%s", ErrNotFound, input.TransactionID)
	}

	wasPending := t.Status == ledger.StatusPending

	if err := s.transactionRepo.UpdateReview(ctx, t.ID, input.Status, input.ReviewerID); err != nil {
		return ledger.Transaction{}, fmt.Errorf("update transaction review: %w", err)
	}

	if wasPending && input.Status == ledger.StatusApproved && t.DebitsOnApproval() {
		if err := s.teamRepo.AddToBalance(ctx, t.TeamID, -t.Amount); err != nil {
			return ledger.Transaction{}, fmt.Errorf("debit team balance: %w", err)
		}
	}

	t.Status = input.Status
	t.ReviewedBy = input.ReviewerID

	s.logger.InfoContext(ctx, "transaction reviewed",
		"transaction_id", t.ID,
		"status", t.Status,
		"reviewer_id", input.ReviewerID,
	)

	return t, nil
}

func (s *LedgerService) CountPending(ctx context.Context) (int, error) {
	count, err := s.transactionRepo.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending transactions: %w", err)
	}

	return count, nil
}
