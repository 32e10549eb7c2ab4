package news

import "context"

// Repository describes news persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, limit int) ([]Item, error)
	Create(ctx context.Context, n Item) error
}
