package award

import "context"

// Repository describes award persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]SeasonAward, error)
	Create(ctx context.Context, a SeasonAward) error
}
