package care

import (
	"errors"

	"pocket-pets/internal/domain/pets"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrPetTooTired   = errors.New("pet is too tired")
)

// ApplyAction aplica los deltas de una acción sobre un snapshot de
// mascota y devuelve el snapshot resultante. Es pura: no persiste,
// no muta el argumento. Si la precondición de la acción no se cumple,
// rechaza sin tocar nada.
func ApplyAction(p pets.Pet, action Action) (pets.Pet, error) {
	spec, ok := catalog[action]
	if !ok {
		return p, ErrUnknownAction
	}

	if spec.MinEnergy > 0 && p.Energy < spec.MinEnergy {
		return p, ErrPetTooTired
	}

	p.Health = pets.ClampStat(p.Health + spec.Health)
	p.Happiness = pets.ClampStat(p.Happiness + spec.Happiness)
	p.Energy = pets.ClampStat(p.Energy + spec.Energy)
	p.Hunger = pets.ClampStat(p.Hunger + spec.Hunger)

	if spec.SetHealthFull {
		p.Health = 100
	}
	if spec.CureStatus {
		p.Status = pets.StatusHealthy
	}

	return p, nil
}
