package illnesses

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	predefined []Illness
	custom     []Illness
}

func newTestRepo() *testRepo {
	return &testRepo{predefined: Catalog()}
}

func (r *testRepo) List(ctx context.Context) ([]Illness, error) {
	out := make([]Illness, 0, len(r.predefined)+len(r.custom))
	out = append(out, r.predefined...)
	out = append(out, r.custom...)
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Illness, error) {
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
	return Illness{}, errRepoNotFound
}

func (r *testRepo) CreateCustom(ctx context.Context, ill Illness) error {
	r.custom = append(r.custom, ill)
	return nil
}

func (r *testRepo) UpdateCustom(ctx context.Context, ill Illness) error {
	for i, it := range r.custom {
		if it.ID == ill.ID {
			r.custom[i] = ill
			return nil
		}
	}
	return errRepoNotFound
}

func (r *testRepo) DeleteCustom(ctx context.Context, id string) error {
	for i, it := range r.custom {
		if it.ID == id {
			r.custom = append(r.custom[:i], r.custom[i+1:]...)
			return nil
		}
	}
	return errRepoNotFound
}

// -------------------------
// Tests
// -------------------------

func TestService_GetAll_PredefinedCatalog(t *testing.T) {
	svc := NewService(newTestRepo())

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 predefined illnesses, got %d", len(all))
	}
	for i, wantID := range []string{"1", "2", "3", "4", "5", "6"} {
		if all[i].ID != wantID {
			t.Fatalf("pos %d: expected id %s, got %s", i, wantID, all[i].ID)
		}
		if !all[i].IsPredefined {
			t.Fatalf("catalog entry %s must be predefined", all[i].ID)
		}
	}
}

func TestService_AddCustom_AppearsAfterCatalog(t *testing.T) {
	svc := NewService(newTestRepo())

	ill, err := svc.AddCustom(context.Background(), CustomInput{
		Name:     "Hairballs",
		Category: CategoryDigestive,
		Symptoms: []SymptomInput{{Name: "Coughing"}},
	})
	if err != nil {
		t.Fatalf("AddCustom error: %v", err)
	}
	if ill.ID == "" {
		t.Fatal("expected generated id")
	}
	if ill.IsPredefined {
		t.Fatal("custom illness must not be predefined")
	}
	// defaults de síntomas
	if ill.Symptoms[0].Commonality != CommonalityCommon {
		t.Fatalf("expected default commonality common, got %s", ill.Symptoms[0].Commonality)
	}

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(all) != 7 || all[6].ID != ill.ID {
		t.Fatalf("custom illness must list after the catalog, got %d items", len(all))
	}
}

func TestService_AddCustom_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.AddCustom(context.Background(), CustomInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AddCustom(context.Background(), CustomInput{Name: "X", Category: "imaginary"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown category: expected ErrInvalidInput, got %v", err)
	}

	// categoría vacía cae en other
	ill, err := svc.AddCustom(context.Background(), CustomInput{Name: "Mystery"})
	if err != nil {
		t.Fatalf("AddCustom error: %v", err)
	}
	if ill.Category != CategoryOther {
		t.Fatalf("expected default category other, got %s", ill.Category)
	}
}

func TestService_PredefinedIsImmutable(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.UpdateCustom(ctx, "1", CustomInput{Name: "Hack"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update predefined: expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteCustom(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete predefined: expected ErrNotFound, got %v", err)
	}
}

func TestService_UpdateCustom_ReplacesEntry(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	ill, err := svc.AddCustom(ctx, CustomInput{Name: "Hairballs"})
	if err != nil {
		t.Fatalf("AddCustom error: %v", err)
	}

	updated, err := svc.UpdateCustom(ctx, ill.ID, CustomInput{
		Name:     "Frequent hairballs",
		Category: CategoryDigestive,
	})
	if err != nil {
		t.Fatalf("UpdateCustom error: %v", err)
	}
	if updated.ID != ill.ID {
		t.Fatalf("id must be stable across updates")
	}
	if updated.Name != "Frequent hairballs" || updated.Category != CategoryDigestive {
		t.Fatalf("unexpected updated entry: %+v", updated)
	}
}
