package wildcard

import "context"

// Repository describes wildcard persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Wildcard, error)
	ListByTeam(ctx context.Context, teamID string) ([]Wildcard, error)
	GetByID(ctx context.Context, wildcardID string) (Wildcard, bool, error)
	Create(ctx context.Context, w Wildcard) error
	MarkUsed(ctx context.Context, wildcardID string) error
}
