package players

import "sync"

// Locks reparte un mutex por jugador. Toda mutación de balance o
// experiencia (acciones de cuidado, compras) pasa por el lock del
// jugador, así el read-modify-write del ledger queda serializado.
// Jugadores distintos corren en paralelo.
type Locks struct {
	mu   sync.Mutex
	byID map[string]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{byID: make(map[string]*sync.Mutex)}
}

// Lock toma el mutex del jugador y devuelve su unlock.
func (l *Locks) Lock(playerID string) func() {
	l.mu.Lock()
	m, ok := l.byID[playerID]
	if !ok {
		m = &sync.Mutex{}
		l.byID[playerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
