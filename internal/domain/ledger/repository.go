package ledger

import "context"

// Repository describes transaction persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, status string) ([]Transaction, error)
	ListByTeam(ctx context.Context, teamID string) ([]Transaction, error)
	GetByID(ctx context.Context, transactionID string) (Transaction, bool, error)
	Create(ctx context.Context, t Transaction) error
	// UpdateReview rewrites status and reviewer unconditionally, even when
	// the row already left pending.
	UpdateReview(ctx context.Context, transactionID, status, reviewedBy string) error
	CountPending(ctx context.Context) (int, error)
}
