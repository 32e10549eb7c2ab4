package player

import "context"

const (
	SortByName        = "name"
	SortByPrice       = "price"
	SortByMarketValue = "marketValue"
)

// ListFilter narrows player listings. Limit <= 0 means repository default.
type ListFilter struct {
	Sort  string
	Limit int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
}
