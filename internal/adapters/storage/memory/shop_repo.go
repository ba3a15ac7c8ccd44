package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pocket-pets/internal/domain/shop"
)

type shopRepo struct {
	mu   sync.RWMutex
	byID map[string]shop.Item
}

func NewShopRepo() shop.Repository {
	return &shopRepo{
		byID: make(map[string]shop.Item),
	}
}

func (r *shopRepo) Create(ctx context.Context, it shop.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("item already exists")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *shopRepo) GetByID(ctx context.Context, id string) (shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return shop.Item{}, shop.ErrNotFound
	}
	return it, nil
}

func (r *shopRepo) List(ctx context.Context) ([]shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shop.Item, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	})

	return out, nil
}
