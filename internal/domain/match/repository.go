package match

import "context"

// ListFilter narrows match listings. Limit <= 0 means repository default.
type ListFilter struct {
	Status string
	Limit  int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	AppendEvent(ctx context.Context, ev Event) error
	ListEvents(ctx context.Context, matchID string) ([]Event, error)
	ReplaceLineups(ctx context.Context, matchID string, entries []LineupEntry) error
	ListLineups(ctx context.Context, matchID string) ([]LineupEntry, error)
}
