package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pocket-pets/internal/domain/players"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type testPlayersRepo struct {
	byID map[string]players.Player

	// getErr fuerza una falla de storage en GetByID.
	getErr error
}

func newTestPlayersRepo() *testPlayersRepo {
	return &testPlayersRepo{byID: map[string]players.Player{}}
}

func (r *testPlayersRepo) Create(ctx context.Context, p players.Player) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testPlayersRepo) Update(ctx context.Context, p players.Player) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testPlayersRepo) GetByID(ctx context.Context, id string) (players.Player, error) {
	if r.getErr != nil {
		return players.Player{}, r.getErr
	}
	p, ok := r.byID[id]
	if !ok {
		return players.Player{}, players.ErrNotFound
	}
	return p, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Adopt_BaseStatsFromRarity(t *testing.T) {
	repo := newTestRepo()
	playersRepo := newTestPlayersRepo()
	playersRepo.byID["owner-1"] = players.Player{ID: "owner-1", Name: "Ana"}

	svc := NewService(repo, playersRepo)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.roll = func(n int) int { return 0 } // roll mínimo => stats = piso del tier

	p, err := svc.Adopt(context.Background(), "owner-1", AdoptInput{Name: "Milo", Rarity: RarityRare})
	if err != nil {
		t.Fatalf("Adopt returned error: %v", err)
	}

	if p.Health != 60 || p.Happiness != 60 || p.Energy != 60 {
		t.Fatalf("rare base stats = %d/%d/%d, want 60/60/60", p.Health, p.Happiness, p.Energy)
	}
	if p.Hunger != 0 {
		t.Fatalf("hunger = %d, want 0 with minimal roll", p.Hunger)
	}
	if p.Status != StatusHealthy || p.Level != 1 {
		t.Fatalf("status=%s level=%d, want healthy/1", p.Status, p.Level)
	}
}

func TestService_Adopt_VitalsAlwaysInBounds(t *testing.T) {
	rarities := []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}

	for _, rarity := range rarities {
		repo := newTestRepo()
		playersRepo := newTestPlayersRepo()
		playersRepo.byID["owner-1"] = players.Player{ID: "owner-1"}

		svc := NewService(repo, playersRepo)
		svc.roll = func(n int) int { return n - 1 } // roll máximo

		p, err := svc.Adopt(context.Background(), "owner-1", AdoptInput{Name: "Milo", Rarity: rarity})
		if err != nil {
			t.Fatalf("Adopt(%s) returned error: %v", rarity, err)
		}

		for name, v := range map[string]int{
			"health": p.Health, "happiness": p.Happiness, "energy": p.Energy, "hunger": p.Hunger,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("%s rarity %s out of bounds: %d", name, rarity, v)
			}
		}
	}
}

func TestService_Adopt_BumpsOwnerPetCount(t *testing.T) {
	repo := newTestRepo()
	playersRepo := newTestPlayersRepo()
	playersRepo.byID["owner-1"] = players.Player{ID: "owner-1", PetCount: 2}

	svc := NewService(repo, playersRepo)

	if _, err := svc.Adopt(context.Background(), "owner-1", AdoptInput{Name: "Milo"}); err != nil {
		t.Fatalf("Adopt returned error: %v", err)
	}

	owner := playersRepo.byID["owner-1"]
	if owner.PetCount != 3 {
		t.Fatalf("pet count = %d, want 3", owner.PetCount)
	}
}

func TestService_Adopt_RejectsUnknownRarity(t *testing.T) {
	repo := newTestRepo()
	playersRepo := newTestPlayersRepo()
	playersRepo.byID["owner-1"] = players.Player{ID: "owner-1"}

	svc := NewService(repo, playersRepo)

	_, err := svc.Adopt(context.Background(), "owner-1", AdoptInput{Name: "Milo", Rarity: Rarity("shiny")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Adopt_RejectsMissingOwner(t *testing.T) {
	svc := NewService(newTestRepo(), newTestPlayersRepo())

	_, err := svc.Adopt(context.Background(), "ghost", AdoptInput{Name: "Milo"})
	if !errors.Is(err, players.ErrNotFound) {
		t.Fatalf("expected players.ErrNotFound, got %v", err)
	}
}

func TestService_Adopt_StorageFailureIsNotNotFound(t *testing.T) {
	storeDown := errors.New("store: connection refused")

	playersRepo := newTestPlayersRepo()
	playersRepo.getErr = storeDown

	svc := NewService(newTestRepo(), playersRepo)

	_, err := svc.Adopt(context.Background(), "owner-1", AdoptInput{Name: "Milo"})
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	if errors.Is(err, players.ErrNotFound) {
		t.Fatal("storage failure must not surface as players.ErrNotFound")
	}
}

func TestClampStat(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{105, 100},
	}
	for _, c := range cases {
		if got := ClampStat(c.in); got != c.want {
			t.Fatalf("ClampStat(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
