package market

import "context"

// Repository describes transfer persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, status string) ([]Transfer, error)
	ListByTeam(ctx context.Context, teamID string) ([]Transfer, error)
	GetByID(ctx context.Context, transferID string) (Transfer, bool, error)
	Create(ctx context.Context, t Transfer) error
}
