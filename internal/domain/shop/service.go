package shop

import (
	"context"
	"errors"
	"strings"
	"time"

	"pocket-pets/internal/domain/players"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("item not found")
)

type Service struct {
	repo        Repository
	playersRepo players.Repository
	now         func() time.Time

	// locks es el mismo juego de locks por jugador que usan las
	// acciones de cuidado; una compra y una acción concurrentes del
	// mismo jugador no pueden pisarse el balance.
	locks *players.Locks
}

func NewService(repo Repository, playersRepo players.Repository, locks *players.Locks) *Service {
	if locks == nil {
		locks = players.NewLocks()
	}
	return &Service{
		repo:        repo,
		playersRepo: playersRepo,
		now:         time.Now,
		locks:       locks,
	}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Purchase debita el precio del item del balance del jugador y suma el
// contador de items. Mismo contrato que las acciones de cuidado: o se
// aplica todo, o no se aplica nada.
func (s *Service) Purchase(ctx context.Context, playerID, itemID string) (players.Player, Item, error) {
	playerID = strings.TrimSpace(playerID)
	itemID = strings.TrimSpace(itemID)
	if playerID == "" || itemID == "" {
		return players.Player{}, Item{}, ErrInvalidInput
	}

	// El repo ya devuelve ErrNotFound para ausencia; cualquier otra
	// falla de storage sube sin re-mapear.
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return players.Player{}, Item{}, err
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	p, err := s.playersRepo.GetByID(ctx, playerID)
	if err != nil {
		return players.Player{}, Item{}, err
	}

	newBalance, err := players.ApplyCurrencyDelta(p.Currency, -it.Price)
	if err != nil {
		return players.Player{}, Item{}, err
	}

	p.Currency = newBalance
	p.ItemCount++
	p.UpdatedAt = s.now()

	if err := s.playersRepo.Update(ctx, p); err != nil {
		return players.Player{}, Item{}, err
	}

	return p, it, nil
}

// Seed carga el catálogo por defecto (modo dev / in-memory).
func (s *Service) Seed(ctx context.Context) error {
	defaults := []struct {
		name  string
		kind  Kind
		price int
	}{
		{"kibble pack", KindFood, 10},
		{"squeaky ball", KindToy, 15},
		{"tonic", KindMedicine, 25},
		{"bow tie", KindAccessory, 40},
	}

	now := s.now()
	for _, d := range defaults {
		it := Item{
			ID:        uuid.NewString(),
			Name:      d.name,
			Kind:      d.kind,
			Price:     d.price,
			CreatedAt: now,
		}
		if err := s.repo.Create(ctx, it); err != nil {
			return err
		}
	}
	return nil
}
