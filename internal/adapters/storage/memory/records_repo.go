package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawcare-service/internal/domain/records"
)

// recordRepo usa un slice para preservar el orden de inserción (orden del
// store), que es el orden que el contrato de ListByPet promete.
type recordRepo struct {
	opts options

	mu    sync.RWMutex
	items []records.HealthRecord
}

func NewRecordRepo(opts ...Option) records.Repository {
	return &recordRepo{opts: buildOptions(opts)}
}

func (r *recordRepo) Create(ctx context.Context, rec records.HealthRecord) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if strings.TrimSpace(rec.ID) == "" {
		r.mu.Unlock()
		return errors.New("record id required")
	}
	if r.indexOf(rec.ID) >= 0 {
		r.mu.Unlock()
		return errors.New("record already exists")
	}
	r.items = append(r.items, rec)
	r.mu.Unlock()

	r.opts.emit("records", rec.ID, ChangeCreated)
	return nil
}

func (r *recordRepo) Update(ctx context.Context, rec records.HealthRecord) error {
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

	r.opts.emit("records", rec.ID, ChangeUpdated)
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
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

	r.opts.emit("records", id, ChangeDeleted)
	return nil
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (records.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return records.HealthRecord{}, ErrNotFound
}

func (r *recordRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.HealthRecord, 0)
	for _, rec := range r.items {
		if rec.PetID != petID {
			continue
		}
		if !matchesFilter(rec, filter) {
			continue
		}
		out = append(out, rec)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *recordRepo) DeleteByPet(ctx context.Context, petID string) error {
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
		r.opts.emit("records", id, ChangeDeleted)
	}
	return nil
}

// indexOf requiere el lock tomado.
func (r *recordRepo) indexOf(id string) int {
	for i, rec := range r.items {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func matchesFilter(rec records.HealthRecord, f records.ListFilter) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if rec.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Ventana de fechas inclusive sobre OccurredAt
	if f.From != nil && rec.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && rec.OccurredAt.After(*f.To) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(rec.Title + " " + rec.Notes + " " + rec.Veterinarian)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}
