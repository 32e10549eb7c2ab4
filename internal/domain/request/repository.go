package request

import "context"

// Repository describes request persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, status string) ([]Request, error)
	GetByID(ctx context.Context, requestID string) (Request, bool, error)
	Create(ctx context.Context, r Request) error
	UpdateReview(ctx context.Context, requestID, status, reviewedBy string) error
	CountPending(ctx context.Context) (int, error)
}
