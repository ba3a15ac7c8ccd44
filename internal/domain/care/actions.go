package care

import "strings"

// Action es una acción de cuidado discreta sobre una mascota.
// @Enum feed, play, rest, heal
type Action string

const (
	ActionFeed Action = "feed"
	ActionPlay Action = "play"
	ActionRest Action = "rest"
	ActionHeal Action = "heal"
)

// actionSpec describe una acción como datos: costo, precondición y deltas.
// Agregar una acción nueva es agregar una fila, no control flow.
type actionSpec struct {
	// Cost se debita del balance del dueño antes de tocar vitals.
	Cost int

	// MinEnergy rechaza la acción (ErrPetTooTired) si la energía actual
	// está por debajo. 0 = sin precondición.
	MinEnergy int

	// Deltas sobre vitals; se aplican y luego se acota cada uno a [0,100].
	Health    int
	Happiness int
	Energy    int
	Hunger    int

	// SetHealthFull pisa health a 100 (ignora el delta de health).
	SetHealthFull bool

	// CureStatus fuerza el estado de la mascota a healthy.
	CureStatus bool

	// OwnerXP se acredita a la experiencia del dueño al commitear.
	OwnerXP int
}

var catalog = map[Action]actionSpec{
	ActionFeed: {
		Cost:      10,
		Hunger:    -30,
		Happiness: 10,
		Energy:    15,
	},
	ActionPlay: {
		MinEnergy: 20,
		Happiness: 20,
		Energy:    -20,
		OwnerXP:   10,
	},
	ActionRest: {
		Energy: 40,
		Health: 10,
	},
	ActionHeal: {
		Cost:          20,
		SetHealthFull: true,
		CureStatus:    true,
	},
}

// ParseAction normaliza y valida el nombre de una acción.
func ParseAction(s string) (Action, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	_, ok := catalog[a]
	return a, ok
}

// Cost devuelve el costo en moneda de la acción.
func (a Action) Cost() int {
	return catalog[a].Cost
}
