package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pocket-pets/internal/domain/players"
)

type playersRepo struct {
	mu   sync.RWMutex
	byID map[string]players.Player
}

func NewPlayersRepo() players.Repository {
	return &playersRepo{
		byID: make(map[string]players.Player),
	}
}

func (r *playersRepo) Create(ctx context.Context, p players.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("player id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("player already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *playersRepo) Update(ctx context.Context, p players.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("player id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		return players.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *playersRepo) GetByID(ctx context.Context, id string) (players.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return players.Player{}, players.ErrNotFound
	}
	return p, nil
}
