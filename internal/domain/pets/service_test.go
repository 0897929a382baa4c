package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
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

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

type testCascade struct {
	deleted []string
}

func (c *testCascade) DeleteByPet(ctx context.Context, petID string) error {
	c.deleted = append(c.deleted, petID)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsSpeciesAndGender(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Whiskers",
		BirthDate: now.AddDate(-3, 0, 0),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Species != SpeciesCat {
		t.Fatalf("expected default species cat, got %s", p.Species)
	}
	if p.Gender != GenderUnknown {
		t.Fatalf("expected default gender unknown, got %s", p.Gender)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RejectsWhitespaceName(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "   ",
		BirthDate: now.AddDate(-3, 0, 0),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for whitespace name, got %v", err)
	}
}

func TestService_Create_AgeBoundary(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// exactamente un año: edad = 1, pasa
	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Mochi",
		BirthDate: now.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("Create at exactly 1 year: %v", err)
	}
	if got := p.Age(now); got != 1 {
		t.Fatalf("expected age 1, got %d", got)
	}

	// 11 meses: edad = 0, rechaza
	_, err = svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Kitten",
		BirthDate: now.AddDate(0, -11, 0),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for age 0, got %v", err)
	}
}

func TestService_Create_CleansAllergenList(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Whiskers",
		BirthDate: now.AddDate(-3, 0, 0),
		Allergens: []string{" chicken ", "chicken", "", "dust"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(p.Allergens) != 2 || p.Allergens[0] != "chicken" || p.Allergens[1] != "dust" {
		t.Fatalf("expected deduped trimmed allergens, got %#v", p.Allergens)
	}
}

func TestService_Update_PreservesOwnerAndCreatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)

	svc.now = func() time.Time { return now1 }
	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Whiskers",
		BirthDate: now1.AddDate(-3, 0, 0),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{
		Name:      "Whiskers II",
		Species:   SpeciesCat,
		Gender:    GenderFemale,
		BirthDate: p.BirthDate,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.OwnerUserID != "owner-1" {
		t.Fatalf("owner must be preserved, got %s", updated.OwnerUserID)
	}
	if updated.CreatedAt != now1 {
		t.Fatalf("CreatedAt must be preserved")
	}
	if updated.UpdatedAt != now2 {
		t.Fatalf("UpdatedAt must advance")
	}
}

func TestService_Delete_RunsCascades(t *testing.T) {
	repo := newTestRepo()
	c1 := &testCascade{}
	c2 := &testCascade{}
	svc := NewService(repo, c1, c2)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:      "Whiskers",
		BirthDate: now.AddDate(-3, 0, 0),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(c1.deleted) != 1 || c1.deleted[0] != p.ID {
		t.Fatalf("cascade 1 not invoked: %#v", c1.deleted)
	}
	if len(c2.deleted) != 1 || c2.deleted[0] != p.ID {
		t.Fatalf("cascade 2 not invoked: %#v", c2.deleted)
	}
}

func TestService_Delete_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
