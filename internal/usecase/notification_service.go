package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/ligaescolar/kings-api/internal/domain/ledger"
	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/notification"
	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/domain/user"
)

// NotificationService derives a feed from live query state. Nothing is
// stored; marking a notification read lives in a browser cookie handled at
// the HTTP layer.
type NotificationService struct {
	transferRepo    market.Repository
	transactionRepo ledger.Repository
	requestRepo     request.Repository
	teamRepo        team.Repository
}

func NewNotificationService(
	transferRepo market.Repository,
	transactionRepo ledger.Repository,
	requestRepo request.Repository,
	teamRepo team.Repository,
) *NotificationService {
	return &NotificationService{
		transferRepo:    transferRepo,
		transactionRepo: transactionRepo,
		requestRepo:     requestRepo,
		teamRepo:        teamRepo,
	}
}

// Feed returns the caller's notifications. Admins get aggregate counters for
// the review inboxes; presidents get one entry per pending row touching
// their team. Other roles get an empty feed.
func (s *NotificationService) Feed(ctx context.Context, principal user.Principal) ([]notification.Notification, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.Feed")
	defer span.End()

	switch principal.Role {
	case user.RoleAdmin:
		return s.adminFeed(ctx)
	case user.RolePresidente:
		return s.presidentFeed(ctx, principal.UserID)
	default:
		return []notification.Notification{}, nil
	}
}

func (s *NotificationService) adminFeed(ctx context.Context) ([]notification.Notification, error) {
	var pendingRequests, pendingTransactions int

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		count, err := s.requestRepo.CountPending(ctx)
		if err != nil {
			return fmt.Errorf("count pending requests: %w", err)
		}
		pendingRequests = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.transactionRepo.CountPending(ctx)
		if err != nil {
			return fmt.Errorf("count pending transactions: %w", err)
		}
		pendingTransactions = count
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make([]notification.Notification, 0, 2)
	if pendingRequests > 0 {
		out = append(out, notification.Notification{
			ID:      notification.AdminRequestsID,
			Kind:    notification.KindRequests,
			Message: fmt.Sprintf("%d solicitudes pendientes de revisión", pendingRequests),
			Count:   pendingRequests,
		})
	}
	if pendingTransactions > 0 {
		out = append(out, notification.Notification{
			ID:      notification.AdminTransactionsID,
			Kind:    notification.KindTransaction,
			Message: fmt.Sprintf("%d transacciones pendientes de revisión", pendingTransactions),
			Count:   pendingTransactions,
		})
	}

	return out, nil
}

func (s *NotificationService) presidentFeed(ctx context.Context, userID string) ([]notification.Notification, error) {
	t, exists, err := s.teamRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get team by owner: %w", err)
	}
	if !exists {
		return []notification.Notification{}, nil
	}

	var transfers []market.Transfer
	var transactions []ledger.Transaction

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.transferRepo.ListByTeam(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list transfers by team: %w", err)
		}
		transfers = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.transactionRepo.ListByTeam(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list transactions by team: %w", err)
		}
		transactions = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make([]notification.Notification, 0, len(transfers)+len(transactions))
	for _, tr := range transfers {
		if tr.Status != market.StatusPending {
			continue
		}
		out = append(out, notification.Notification{
			ID:      "transfer-" + tr.ID,
			Kind:    notification.KindTransfer,
			Message: fmt.Sprintf("Oferta pendiente por %d eurosKings", tr.Price),
		})
	}
	for _, tx := range transactions {
		if tx.Status != ledger.StatusPending {
			continue
		}
		out = append(out, notification.Notification{
			ID:      "transaction-" + tx.ID,
			Kind:    notification.KindTransaction,
			Message: fmt.Sprintf("Transacción pendiente: %s", tx.Description),
		})
	}

	return out, nil
}
