package weights

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	items []WeightRecord
}

func newTestRepo() *testRepo {
	return &testRepo{}
}

func (r *testRepo) Create(ctx context.Context, rec WeightRecord) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec WeightRecord) error {
	for i, it := range r.items {
		if it.ID == rec.ID {
			r.items[i] = rec
			return nil
		}
	}
	return errRepoNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errRepoNotFound
}

func (r *testRepo) GetByID(ctx context.Context, id string) (WeightRecord, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return WeightRecord{}, errRepoNotFound
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]WeightRecord, error) {
	out := make([]WeightRecord, 0)
	for _, it := range r.items {
		if it.PetID == petID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID string) error {
	kept := r.items[:0]
	for _, it := range r.items {
		if it.PetID != petID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func addWeight(t *testing.T, svc *Service, petID string, kg float64, date time.Time) WeightRecord {
	t.Helper()
	rec, err := svc.Create(context.Background(), petID, CreateInput{Weight: kg, Date: date})
	if err != nil {
		t.Fatalf("Create(%v kg): %v", kg, err)
	}
	return rec
}

// -------------------------
// Tests
// -------------------------

func TestService_Latest_EmptyStoreIsNilNotError(t *testing.T) {
	svc := NewService(newTestRepo())

	latest, err := svc.Latest(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil latest on empty store, got %+v", latest)
	}
}

func TestService_Delta_NilWithFewerThanTwo(t *testing.T) {
	svc := NewService(newTestRepo())

	d, err := svc.Delta(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Delta error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil delta on empty store, got %v", *d)
	}

	addWeight(t, svc, "pet-1", 4.5, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	d, err = svc.Delta(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Delta error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil delta with one record, got %v", *d)
	}
}

func TestService_Delta_LatestMinusPrevious(t *testing.T) {
	svc := NewService(newTestRepo())

	// insertadas fuera de orden: la más reciente (4.2) va primera en el cálculo
	addWeight(t, svc, "pet-1", 4.2, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	addWeight(t, svc, "pet-1", 4.4, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	addWeight(t, svc, "pet-1", 4.8, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	d, err := svc.Delta(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Delta error: %v", err)
	}
	if d == nil {
		t.Fatal("expected non-nil delta")
	}
	if math.Abs(*d-(-0.2)) > 1e-9 {
		t.Fatalf("expected delta -0.2, got %v", *d)
	}
}

func TestService_Create_WeightRange(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for _, bad := range []float64{0.4, 15.1, 0, -1} {
		if _, err := svc.Create(ctx, "pet-1", CreateInput{Weight: bad, Date: date}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("weight %v: expected ErrInvalidInput, got %v", bad, err)
		}
	}
	// los extremos del rango son válidos
	for _, ok := range []float64{MinWeightKg, MaxWeightKg} {
		if _, err := svc.Create(ctx, "pet-1", CreateInput{Weight: ok, Date: date}); err != nil {
			t.Fatalf("weight %v: unexpected error %v", ok, err)
		}
	}
}

func TestService_Latest_PicksMostRecentDate(t *testing.T) {
	svc := NewService(newTestRepo())

	addWeight(t, svc, "pet-1", 4.8, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	newest := addWeight(t, svc, "pet-1", 4.2, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	addWeight(t, svc, "pet-1", 4.5, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	latest, err := svc.Latest(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if latest == nil || latest.ID != newest.ID {
		t.Fatalf("expected latest to be the most recent record, got %+v", latest)
	}
}

func TestService_Delta_IgnoresOtherPets(t *testing.T) {
	svc := NewService(newTestRepo())

	addWeight(t, svc, "pet-1", 4.5, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	addWeight(t, svc, "pet-2", 9.9, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))

	d, err := svc.Delta(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("Delta error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil delta, records of other pets must not count, got %v", *d)
	}
}
