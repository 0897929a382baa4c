package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawcare-service/internal/domain/illnesses"
)

// illnessRepo arranca sembrado con el catálogo predefinido; las personalizadas
// se agregan detrás, en orden de alta.
type illnessRepo struct {
	opts options

	mu         sync.RWMutex
	predefined []illnesses.Illness
	custom     []illnesses.Illness
}

func NewIllnessRepo(opts ...Option) illnesses.Repository {
	return &illnessRepo{
		opts:       buildOptions(opts),
		predefined: illnesses.Catalog(),
	}
}

func (r *illnessRepo) List(ctx context.Context) ([]illnesses.Illness, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]illnesses.Illness, 0, len(r.predefined)+len(r.custom))
	out = append(out, r.predefined...)
	out = append(out, r.custom...)
	return out, nil
}

func (r *illnessRepo) GetByID(ctx context.Context, id string) (illnesses.Illness, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ill := range r.predefined {
		if ill.ID == id {
			return ill, nil
		}
	}
	for _, ill := range r.custom {
		if ill.ID == id {
			return ill, nil
		}
	}
	return illnesses.Illness{}, ErrNotFound
}

func (r *illnessRepo) CreateCustom(ctx context.Context, ill illnesses.Illness) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if strings.TrimSpace(ill.ID) == "" {
		r.mu.Unlock()
		return errors.New("illness id required")
	}
	if r.indexOfCustom(ill.ID) >= 0 {
		r.mu.Unlock()
		return errors.New("illness already exists")
	}
	ill.IsPredefined = false
	r.custom = append(r.custom, ill)
	r.mu.Unlock()

	r.opts.emit("illnesses", ill.ID, ChangeCreated)
	return nil
}

func (r *illnessRepo) UpdateCustom(ctx context.Context, ill illnesses.Illness) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	i := r.indexOfCustom(ill.ID)
	if i < 0 {
		// El catálogo predefinido es inmutable: cae aquí también.
		r.mu.Unlock()
		return ErrNotFound
	}
	ill.IsPredefined = false
	r.custom[i] = ill
	r.mu.Unlock()

	r.opts.emit("illnesses", ill.ID, ChangeUpdated)
	return nil
}

func (r *illnessRepo) DeleteCustom(ctx context.Context, id string) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	i := r.indexOfCustom(id)
	if i < 0 {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.custom = append(r.custom[:i], r.custom[i+1:]...)
	r.mu.Unlock()

	r.opts.emit("illnesses", id, ChangeDeleted)
	return nil
}

// indexOfCustom requiere el lock tomado.
func (r *illnessRepo) indexOfCustom(id string) int {
	for i, ill := range r.custom {
		if ill.ID == id {
			return i
		}
	}
	return -1
}
