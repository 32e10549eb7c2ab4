package discipline

import "context"

// Repository describes suspension persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Suspension, error)
	Create(ctx context.Context, s Suspension) error
}
