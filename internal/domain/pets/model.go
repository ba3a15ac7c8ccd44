package pets

import "time"

// Rarity clasifica a la mascota y define la escala de stats base
// al momento de la adopción.
// @Enum common, uncommon, rare, epic, legendary, mythic
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Status es el estado general de la mascota.
// @Enum healthy, sick, tired
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusSick    Status = "sick"
	StatusTired   Status = "tired"
)

// Pet es el snapshot plano de una mascota. La relación con el dueño
// es solo por id; nada de grafos de objetos.
type Pet struct {
	ID      string
	OwnerID string

	Name   string
	Rarity Rarity

	// Level es un contador propio de la mascota, independiente del
	// nivel del jugador.
	Level int

	Status Status

	// Vitals acotados a [0,100]. Hunger va invertido: 0 = sin hambre.
	Health    int
	Happiness int
	Energy    int
	Hunger    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClampStat acota un vital al rango [0,100].
// Se aplica después de cada delta, sin excepción.
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
