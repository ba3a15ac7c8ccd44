package shop

import "context"

type Repository interface {
	Create(ctx context.Context, it Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	List(ctx context.Context) ([]Item, error)
}
