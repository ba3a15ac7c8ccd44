package players

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("player not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ApplyCurrencyDelta aplica un débito/crédito sobre un balance.
// Si el resultado quedaría negativo, rechaza y no aplica nada.
// Los créditos (delta > 0) nunca fallan.
func ApplyCurrencyDelta(balance, delta int) (int, error) {
	next := balance + delta
	if next < 0 {
		return balance, ErrInsufficientFunds
	}
	return next, nil
}

type Service struct {
	repo Repository
	now  func() time.Time

	// StartingBalance se acredita al crear la cuenta.
	startingBalance int
}

func NewService(repo Repository, startingBalance int) *Service {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &Service{
		repo:            repo,
		now:             time.Now,
		startingBalance: startingBalance,
	}
}

type CreateInput struct {
	Name string
}

// Create registra el perfil de jugador para un userID ya autenticado.
// El alta de credenciales vive en el servicio de cuentas externo;
// aquí solo nace el estado de economía/progresión.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Player, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Player{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Player{}, ErrInvalidInput
	}

	now := s.now()
	p := Player{
		ID:         userID,
		Name:       name,
		Currency:   s.startingBalance,
		Experience: 0,
		Level:      LevelFor(0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Player{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Player{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
