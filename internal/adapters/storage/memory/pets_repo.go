package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawcare-service/internal/domain/pets"
)

var (
	ErrNotFound = errors.New("not found")
)

type petRepo struct {
	opts options

	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo(opts ...Option) pets.Repository {
	return &petRepo{
		opts: buildOptions(opts),
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if strings.TrimSpace(p.ID) == "" {
		r.mu.Unlock()
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		r.mu.Unlock()
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	r.mu.Unlock()

	r.opts.emit("pets", p.ID, ChangeCreated)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.byID[p.ID]; !exists {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.byID[p.ID] = p
	r.mu.Unlock()

	r.opts.emit("pets", p.ID, ChangeUpdated)
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.byID[id]; !exists {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.byID, id)
	r.mu.Unlock()

	r.opts.emit("pets", id, ChangeDeleted)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
