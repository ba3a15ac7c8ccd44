package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pocket-pets/internal/domain/care"
)

type careRepo struct {
	mu      sync.RWMutex
	entries []care.Entry
}

func NewCareRepo() care.Repository {
	return &careRepo{}
}

// Append agrega al final; el slice nunca se reordena ni se muta.
func (r *careRepo) Append(ctx context.Context, e care.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *careRepo) ListByPet(ctx context.Context, petID string) ([]care.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]care.Entry, 0)
	for _, e := range r.entries {
		if e.PetID == petID {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
