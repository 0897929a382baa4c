package records

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	items []HealthRecord
}

func newTestRepo() *testRepo {
	return &testRepo{}
}

func (r *testRepo) Create(ctx context.Context, rec HealthRecord) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec HealthRecord) error {
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

func (r *testRepo) GetByID(ctx context.Context, id string) (HealthRecord, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return HealthRecord{}, errRepoNotFound
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]HealthRecord, error) {
	out := make([]HealthRecord, 0)
	for _, it := range r.items {
		if it.PetID != petID {
			continue
		}
		if len(filter.Types) > 0 {
			found := false
			for _, ty := range filter.Types {
				if it.Type == ty {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.From != nil && it.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && it.OccurredAt.After(*filter.To) {
			continue
		}
		if q := strings.ToLower(filter.Query); q != "" {
			if !strings.Contains(strings.ToLower(it.Title+" "+it.Notes), q) {
				continue
			}
		}
		out = append(out, it)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
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

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rec, err := svc.Create(context.Background(), "pet-1", CreateInput{
		Type:  TypeSymptom,
		Title: "Sneezing",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Severity != SeverityMild {
		t.Fatalf("expected default severity mild, got %s", rec.Severity)
	}
	if rec.OccurredAt != now {
		t.Fatalf("expected OccurredAt defaulted to now")
	}
	if rec.RecordedAt != now {
		t.Fatalf("expected RecordedAt = now")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "pet-1", CreateInput{Type: TypeSymptom, Title: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "pet-1", CreateInput{Type: "surgery", Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown type: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "pet-1", CreateInput{Type: TypeSymptom, Severity: "fatal", Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown severity: expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_PreservesPetAndRecordedAt(t *testing.T) {
	svc := NewService(newTestRepo())

	now1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(48 * time.Hour)

	svc.now = func() time.Time { return now1 }
	rec, err := svc.Create(context.Background(), "pet-1", CreateInput{
		Type:  TypeVetVisit,
		Title: "Checkup",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	updated, err := svc.Update(context.Background(), rec.ID, UpdateInput{
		Type:  TypeVetVisit,
		Title: "Annual checkup",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.PetID != "pet-1" {
		t.Fatalf("PetID must be preserved, got %s", updated.PetID)
	}
	if updated.RecordedAt != now1 {
		t.Fatalf("RecordedAt must be preserved")
	}
	if updated.OccurredAt != now1 {
		t.Fatalf("empty OccurredAt must keep the previous value")
	}
}

func TestService_Summary_WeeklyBoundary(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mustCreate := func(title string, occurred time.Time) {
		t.Helper()
		_, err := svc.Create(context.Background(), "pet-1", CreateInput{
			Type:       TypeSymptom,
			Title:      title,
			OccurredAt: occurred,
		})
		if err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}

	mustCreate("today", now)
	mustCreate("six days ago", now.AddDate(0, 0, -6))
	mustCreate("eight days ago", now.AddDate(0, 0, -8)) // fuera de la ventana semanal

	sum, err := svc.Summary(context.Background(), "pet-1", RangeWeekly)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sum.TotalRecords != 2 {
		t.Fatalf("weekly summary: expected 2 records, got %d", sum.TotalRecords)
	}
	if sum.TimeRange != RangeWeekly || sum.PetID != "pet-1" {
		t.Fatalf("unexpected summary envelope: %+v", sum)
	}
}

func TestService_NextVaccinationDue(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mustVaccination := func(title string, reminder *time.Time) {
		t.Helper()
		_, err := svc.Create(context.Background(), "pet-1", CreateInput{
			Type:       TypeVaccination,
			Title:      title,
			OccurredAt: now.AddDate(0, -1, 0),
			ReminderAt: reminder,
		})
		if err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}

	// sin vacunas con recordatorio => nil
	due, err := svc.NextVaccinationDue(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("NextVaccinationDue error: %v", err)
	}
	if due != nil {
		t.Fatalf("expected nil due with no reminders, got %v", due)
	}

	past := now.AddDate(0, -1, 0)
	farFuture := now.AddDate(1, 0, 0)
	nearFuture := now.AddDate(0, 1, 0)

	mustVaccination("expired", &past)       // vencida: no cuenta
	mustVaccination("rabies", &farFuture)   // a un año
	mustVaccination("triple", &nearFuture)  // a un mes: es la próxima
	mustVaccination("no reminder", nil)     // sin recordatorio: excluida

	due, err = svc.NextVaccinationDue(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("NextVaccinationDue error: %v", err)
	}
	if due == nil || !due.Equal(nearFuture) {
		t.Fatalf("expected due %v, got %v", nearFuture, due)
	}
}

func TestService_ListByPet_WithinDaysCutoffComputedOnce(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Create(context.Background(), "pet-1", CreateInput{
		Type:       TypeSymptom,
		Title:      "old",
		OccurredAt: now.AddDate(0, 0, -31),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	items, err := svc.ListByPet(context.Background(), "pet-1", Filter{WithinDays: 30})
	if err != nil {
		t.Fatalf("ListByPet error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("record older than window must be excluded, got %d", len(items))
	}
}

func TestService_Create_AttachmentValidation(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "pet-1", CreateInput{
		Type:  TypeVetVisit,
		Title: "X-ray",
		Attachments: []AttachmentInput{
			{FileName: "scan.png", FileType: FileImage},
			{FileName: "", FileType: FileImage},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty attachment name: expected ErrInvalidInput, got %v", err)
	}

	rec, err := svc.Create(context.Background(), "pet-1", CreateInput{
		Type:  TypeVetVisit,
		Title: "X-ray",
		Attachments: []AttachmentInput{
			{FileName: "scan.png", FileType: FileImage, Size: 1024},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(rec.Attachments) != 1 || rec.Attachments[0].ID == "" {
		t.Fatalf("expected attachment with generated id, got %#v", rec.Attachments)
	}
}
