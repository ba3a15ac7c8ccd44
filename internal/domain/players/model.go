package players

import "time"

// Player representa la cuenta de un jugador dentro de la plataforma.
// Es un snapshot plano: toda relación con otras entidades va por id.
type Player struct {
	ID   string
	Name string

	// Currency nunca puede quedar negativo (ver ApplyCurrencyDelta).
	Currency int

	// Experience solo crece. Level siempre se deriva de Experience
	// vía LevelFor; ningún código debe asignarlo por separado.
	Experience int
	Level      int

	// Contadores informativos, sin invariantes propias.
	PetCount  int
	ItemCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
