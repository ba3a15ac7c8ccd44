package shop

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pocket-pets/internal/domain/players"
)

type testRepo struct {
	byID map[string]Item
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Item{}}
}

func (r *testRepo) Create(ctx context.Context, it Item) error {
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *testRepo) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

type testPlayersRepo struct {
	byID map[string]players.Player

	// getErr fuerza una falla de storage en GetByID.
	getErr error
}

func (r *testPlayersRepo) Create(ctx context.Context, p players.Player) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testPlayersRepo) Update(ctx context.Context, p players.Player) error {
	if _, ok := r.byID[p.ID]; !ok {
		return players.ErrNotFound
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

func TestService_Purchase(t *testing.T) {
	repo := newTestRepo()
	repo.byID["item-1"] = Item{ID: "item-1", Name: "tonic", Kind: KindMedicine, Price: 25}

	playersRepo := &testPlayersRepo{byID: map[string]players.Player{
		"p1": {ID: "p1", Currency: 100, ItemCount: 0},
	}}

	svc := NewService(repo, playersRepo, players.NewLocks())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	p, it, err := svc.Purchase(context.Background(), "p1", "item-1")
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if p.Currency != 75 {
		t.Fatalf("balance = %d, want 75", p.Currency)
	}
	if p.ItemCount != 1 {
		t.Fatalf("item count = %d, want 1", p.ItemCount)
	}
	if it.Name != "tonic" {
		t.Fatalf("item = %q, want tonic", it.Name)
	}
	if stored := playersRepo.byID["p1"]; stored.Currency != 75 || stored.ItemCount != 1 {
		t.Fatalf("persisted player = %+v", stored)
	}
}

func TestService_Purchase_InsufficientFundsIsNoOp(t *testing.T) {
	repo := newTestRepo()
	repo.byID["item-1"] = Item{ID: "item-1", Name: "bow tie", Kind: KindAccessory, Price: 40}

	playersRepo := &testPlayersRepo{byID: map[string]players.Player{
		"p1": {ID: "p1", Currency: 30},
	}}

	svc := NewService(repo, playersRepo, players.NewLocks())

	_, _, err := svc.Purchase(context.Background(), "p1", "item-1")
	if !errors.Is(err, players.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if stored := playersRepo.byID["p1"]; stored.Currency != 30 || stored.ItemCount != 0 {
		t.Fatalf("rejected purchase mutated player: %+v", stored)
	}
}

func TestService_Purchase_StorageFailureIsNotNotFound(t *testing.T) {
	storeDown := errors.New("store: connection refused")

	repo := newTestRepo()
	repo.byID["item-1"] = Item{ID: "item-1", Name: "tonic", Kind: KindMedicine, Price: 25}

	playersRepo := &testPlayersRepo{byID: map[string]players.Player{}, getErr: storeDown}
	svc := NewService(repo, playersRepo, players.NewLocks())

	_, _, err := svc.Purchase(context.Background(), "p1", "item-1")
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	if errors.Is(err, players.ErrNotFound) || errors.Is(err, ErrNotFound) {
		t.Fatal("storage failure must not surface as a not-found error")
	}
}

func TestService_Purchase_UnknownItem(t *testing.T) {
	playersRepo := &testPlayersRepo{byID: map[string]players.Player{"p1": {ID: "p1", Currency: 100}}}
	svc := NewService(newTestRepo(), playersRepo, players.NewLocks())

	_, _, err := svc.Purchase(context.Background(), "p1", "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Seed(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testPlayersRepo{byID: map[string]players.Player{}}, players.NewLocks())

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("seeded items = %d, want 4", len(items))
	}
	// el listado viene ordenado por precio
	wantPrices := []int{10, 15, 25, 40}
	for i, it := range items {
		if it.Price != wantPrices[i] {
			t.Fatalf("item %d price = %d, want %d", i, it.Price, wantPrices[i])
		}
	}
}
