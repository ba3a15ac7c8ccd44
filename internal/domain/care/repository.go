package care

import "context"

// Repository es el historial append-only: alta y lectura, sin update
// ni delete.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	ListByPet(ctx context.Context, petID string) ([]Entry, error)
}
