package care

import (
	"context"
	"errors"
	"strings"
	"time"

	"pocket-pets/internal/domain/pets"
	"pocket-pets/internal/domain/players"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNotOwner     = errors.New("caller does not own the pet")
)

// Service coordina una acción de cuidado de punta a punta:
// valida precondiciones, computa débito + vitals + experiencia sobre
// snapshots locales, y recién al final persiste y registra historial.
// Un rechazo en cualquier paso no deja mutación observable.
type Service struct {
	repo        Repository
	petsRepo    pets.Repository
	playersRepo players.Repository
	now         func() time.Time

	// locks serializa por jugador: el débito de balance es un
	// read-modify-write y el mismo balance puede pagar acciones sobre
	// varias mascotas. Como la mascota tiene un único dueño, esto
	// también serializa las acciones sobre cada mascota.
	locks *players.Locks
}

func NewService(repo Repository, petsRepo pets.Repository, playersRepo players.Repository, locks *players.Locks) *Service {
	if locks == nil {
		locks = players.NewLocks()
	}
	return &Service{
		repo:        repo,
		petsRepo:    petsRepo,
		playersRepo: playersRepo,
		now:         time.Now,
		locks:       locks,
	}
}

type PerformInput struct {
	Action Action
	Note   string
}

// Result junta los snapshots actualizados que devuelve una acción commiteada.
type Result struct {
	Pet    pets.Pet
	Player players.Player
	Entry  Entry
}

// Perform ejecuta una acción de cuidado de callerID sobre petID.
//
// Orden fijo: Validating -> Debiting -> Mutating -> Recording -> Committed.
// El débito se computa antes que cualquier otra mutación; como todo se
// computa sobre copias, un rechazo posterior (p.ej. PetTooTired) lo
// descarta sin rollback explícito.
func (s *Service) Perform(ctx context.Context, callerID, petID string, in PerformInput) (Result, error) {
	callerID = strings.TrimSpace(callerID)
	petID = strings.TrimSpace(petID)
	if callerID == "" || petID == "" {
		return Result{}, ErrInvalidInput
	}
	if _, ok := catalog[in.Action]; !ok {
		return Result{}, ErrUnknownAction
	}

	unlock := s.locks.Lock(callerID)
	defer unlock()

	// Validating. Solo la ausencia se traduce a ErrNotFound; una falla
	// de storage sube tal cual (el handler la mapea a 500).
	pet, err := s.petsRepo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}
	if pet.OwnerID != callerID {
		return Result{}, ErrNotOwner
	}
	owner, err := s.playersRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, players.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}

	// Debiting
	spec := catalog[in.Action]
	newBalance := owner.Currency
	if spec.Cost != 0 {
		newBalance, err = players.ApplyCurrencyDelta(owner.Currency, -spec.Cost)
		if err != nil {
			return Result{}, err
		}
	}

	// Mutating
	updatedPet, err := ApplyAction(pet, in.Action)
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	owner.Currency = newBalance
	owner.AddExperience(spec.OwnerXP)
	owner.UpdatedAt = now
	updatedPet.UpdatedAt = now

	entry := Entry{
		ID:        uuid.NewString(),
		PetID:     petID,
		PlayerID:  callerID,
		Action:    in.Action,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: now,
	}

	// Committed: persistir ambos snapshots y recién después el historial,
	// para que nunca exista un entry de una acción que no aplicó.
	if err := s.playersRepo.Update(ctx, owner); err != nil {
		return Result{}, err
	}
	if err := s.petsRepo.Update(ctx, updatedPet); err != nil {
		return Result{}, err
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return Result{}, err
	}

	return Result{Pet: updatedPet, Player: owner, Entry: entry}, nil
}

// History lista el historial de cuidado de una mascota (solo el dueño).
func (s *Service) History(ctx context.Context, callerID, petID string) ([]Entry, error) {
	callerID = strings.TrimSpace(callerID)
	petID = strings.TrimSpace(petID)
	if callerID == "" || petID == "" {
		return nil, ErrInvalidInput
	}

	pet, err := s.petsRepo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pet.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	return s.repo.ListByPet(ctx, petID)
}
