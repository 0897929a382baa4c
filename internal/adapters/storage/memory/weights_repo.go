package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawcare-service/internal/domain/weights"
)

// weightRepo guarda en orden de inserción y ordena al listar: el sort estable
// por fecha descendente garantiza que empates de fecha conserven el orden de
// alta, como promete el contrato del Repository.
type weightRepo struct {
	opts options

	mu    sync.RWMutex
	items []weights.WeightRecord
}

func NewWeightRepo(opts ...Option) weights.Repository {
	return &weightRepo{opts: buildOptions(opts)}
}

func (r *weightRepo) Create(ctx context.Context, rec weights.WeightRecord) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if strings.TrimSpace(rec.ID) == "" {
		r.mu.Unlock()
		return errors.New("weight record id required")
	}
	if r.indexOf(rec.ID) >= 0 {
		r.mu.Unlock()
		return errors.New("weight record already exists")
	}
	r.items = append(r.items, rec)
	r.mu.Unlock()

	r.opts.emit("weights", rec.ID, ChangeCreated)
	return nil
}

func (r *weightRepo) Update(ctx context.Context, rec weights.WeightRecord) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	i := r.indexOf(rec.ID)
	if i < 0 {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.items[i] = rec
	r.mu.Unlock()

	r.opts.emit("weights", rec.ID, ChangeUpdated)
	return nil
}

func (r *weightRepo) Delete(ctx context.Context, id string) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.mu.Unlock()

	r.opts.emit("weights", id, ChangeDeleted)
	return nil
}

func (r *weightRepo) GetByID(ctx context.Context, id string) (weights.WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return weights.WeightRecord{}, ErrNotFound
}

func (r *weightRepo) ListByPet(ctx context.Context, petID string) ([]weights.WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]weights.WeightRecord, 0)
	for _, rec := range r.items {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *weightRepo) DeleteByPet(ctx context.Context, petID string) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	kept := r.items[:0]
	var removed []string
	for _, rec := range r.items {
		if rec.PetID == petID {
			removed = append(removed, rec.ID)
			continue
		}
		kept = append(kept, rec)
	}
	r.items = kept
	r.mu.Unlock()

	for _, id := range removed {
		r.opts.emit("weights", id, ChangeDeleted)
	}
	return nil
}

// indexOf requiere el lock tomado.
func (r *weightRepo) indexOf(id string) int {
	for i, rec := range r.items {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
