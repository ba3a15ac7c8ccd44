package care

import "time"

// Entry es el registro inmutable de una acción de cuidado commiteada.
// Solo existe si la acción aplicó todas sus mutaciones; nunca se
// actualiza ni se borra.
type Entry struct {
	ID       string
	PetID    string
	PlayerID string

	Action Action
	Note   string

	CreatedAt time.Time
}
