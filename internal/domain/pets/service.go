package pets

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"pocket-pets/internal/domain/players"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// baseVitalsByRarity define el piso de health/happiness/energy según tier.
// Al adoptar se suma un roll acotado (0..vitalSpread) sobre el piso.
var baseVitalsByRarity = map[Rarity]int{
	RarityCommon:    50,
	RarityUncommon:  55,
	RarityRare:      60,
	RarityEpic:      65,
	RarityLegendary: 70,
	RarityMythic:    75,
}

const (
	vitalSpread    = 20
	maxStartHunger = 30
)

type Service struct {
	repo        Repository
	playersRepo players.Repository
	now         func() time.Time

	// roll devuelve un entero en [0, n). Inyectable para tests.
	roll func(n int) int
}

func NewService(repo Repository, playersRepo players.Repository) *Service {
	return &Service{
		repo:        repo,
		playersRepo: playersRepo,
		now:         time.Now,
		roll:        rand.Intn,
	}
}

type AdoptInput struct {
	Name   string
	Rarity Rarity
}

// Adopt crea una mascota para ownerID con stats base según rareza
// más un roll acotado, y actualiza el contador de mascotas del dueño.
func (s *Service) Adopt(ctx context.Context, ownerID string, in AdoptInput) (Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Pet{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}

	rarity := in.Rarity
	if rarity == "" {
		rarity = RarityCommon
	}
	base, ok := baseVitalsByRarity[rarity]
	if !ok {
		return Pet{}, ErrInvalidInput
	}

	// players.ErrNotFound sube tal cual; cualquier otra falla de
	// storage también, sin disfrazarla de "dueño inexistente".
	owner, err := s.playersRepo.GetByID(ctx, ownerID)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Rarity:    rarity,
		Level:     1,
		Status:    StatusHealthy,
		Health:    ClampStat(base + s.roll(vitalSpread+1)),
		Happiness: ClampStat(base + s.roll(vitalSpread+1)),
		Energy:    ClampStat(base + s.roll(vitalSpread+1)),
		Hunger:    ClampStat(s.roll(maxStartHunger + 1)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}

	owner.PetCount++
	owner.UpdatedAt = now
	if err := s.playersRepo.Update(ctx, owner); err != nil {
		return Pet{}, err
	}

	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID)
}
