package players

import "context"

type Repository interface {
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	GetByID(ctx context.Context, id string) (Player, error)
}
