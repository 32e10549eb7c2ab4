package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	GetByOwner(ctx context.Context, ownerID string) (Team, bool, error)
	Create(ctx context.Context, t Team) error
	// AddToBalance shifts euros_kings by delta with no floor check; the
	// ledger relies on that to reproduce the offer-time-only balance guard.
	AddToBalance(ctx context.Context, teamID string, delta int64) error
}
