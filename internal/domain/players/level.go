package players

import "math"

// LevelFor calcula el nivel a partir de la experiencia acumulada.
// Es la única fuente de verdad del nivel: floor(sqrt(xp/100)) + 1.
// Monótona no-decreciente; LevelFor(0) == 1.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Sqrt(float64(experience)/100)) + 1
}

// AddExperience suma xp (nunca resta) y recalcula el nivel.
func (p *Player) AddExperience(xp int) {
	if xp <= 0 {
		return
	}
	p.Experience += xp
	p.Level = LevelFor(p.Experience)
}
