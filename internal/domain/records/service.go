package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AttachmentInput struct {
	FileName string
	FileType FileType
	FilePath string
	Size     int64
}

type CreateInput struct {
	IllnessID    string
	Type         RecordType
	Severity     Severity
	Title        string
	Notes        string
	Veterinarian string
	OccurredAt   time.Time
	ReminderAt   *time.Time
	Attachments  []AttachmentInput
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (HealthRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return HealthRecord{}, ErrInvalidInput
	}

	now := s.now()
	rec := HealthRecord{
		ID:           uuid.NewString(),
		PetID:        petID,
		IllnessID:    strings.TrimSpace(in.IllnessID),
		Type:         in.Type,
		Severity:     in.Severity,
		Title:        strings.TrimSpace(in.Title),
		Notes:        strings.TrimSpace(in.Notes),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		OccurredAt:   in.OccurredAt,
		RecordedAt:   now,
		ReminderAt:   in.ReminderAt,
	}

	if rec.Severity == "" {
		rec.Severity = SeverityMild
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = now
	}

	atts, err := buildAttachments(in.Attachments, now)
	if err != nil {
		return HealthRecord{}, err
	}
	rec.Attachments = atts

	if err := s.validate(rec); err != nil {
		return HealthRecord{}, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return HealthRecord{}, err
	}
	return rec, nil
}

type UpdateInput struct {
	IllnessID    string
	Type         RecordType
	Severity     Severity
	Title        string
	Notes        string
	Veterinarian string
	OccurredAt   time.Time
	ReminderAt   *time.Time
	Attachments  []AttachmentInput
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (HealthRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return HealthRecord{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return HealthRecord{}, ErrNotFound
	}

	now := s.now()
	rec := HealthRecord{
		ID:           current.ID,
		PetID:        current.PetID,
		IllnessID:    strings.TrimSpace(in.IllnessID),
		Type:         in.Type,
		Severity:     in.Severity,
		Title:        strings.TrimSpace(in.Title),
		Notes:        strings.TrimSpace(in.Notes),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		OccurredAt:   in.OccurredAt,
		RecordedAt:   current.RecordedAt,
		ReminderAt:   in.ReminderAt,
	}

	if rec.Severity == "" {
		rec.Severity = current.Severity
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = current.OccurredAt
	}

	atts, err := buildAttachments(in.Attachments, now)
	if err != nil {
		return HealthRecord{}, err
	}
	rec.Attachments = atts

	if err := s.validate(rec); err != nil {
		return HealthRecord{}, err
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return HealthRecord{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (HealthRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Filter es el filtro a nivel servicio; WithinDays se traduce a un corte From
// evaluado una sola vez por llamada (no por registro).
type Filter struct {
	Types      []RecordType
	WithinDays int
	From       *time.Time
	To         *time.Time
	Query      string
	Limit      int
}

func (s *Service) ListByPet(ctx context.Context, petID string, f Filter) ([]HealthRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}

	lf := ListFilter{
		Types: f.Types,
		From:  f.From,
		To:    f.To,
		Query: f.Query,
		Limit: f.Limit,
	}
	if f.WithinDays > 0 {
		cutoff := s.now().AddDate(0, 0, -f.WithinDays)
		if lf.From == nil || cutoff.After(*lf.From) {
			lf.From = &cutoff
		}
	}

	return s.repo.ListByPet(ctx, petID, lf)
}

// NextVaccinationDue devuelve el menor ReminderAt a futuro entre los registros
// de vacunación de la mascota. Registros sin recordatorio quedan excluidos;
// nil significa que no hay ninguna vacunación pendiente.
func (s *Service) NextVaccinationDue(ctx context.Context, petID string) (*time.Time, error) {
	items, err := s.ListByPet(ctx, petID, Filter{Types: []RecordType{TypeVaccination}})
	if err != nil {
		return nil, err
	}

	now := s.now()
	var due *time.Time
	for _, rec := range items {
		if rec.ReminderAt == nil || rec.ReminderAt.Before(now) {
			continue
		}
		if due == nil || rec.ReminderAt.Before(*due) {
			t := *rec.ReminderAt
			due = &t
		}
	}
	return due, nil
}

// Summary cuenta los registros de la mascota dentro de la ventana del rango.
// Ventana aproximada de ancho fijo (weekly=7d, etc.), sin calendario real.
func (s *Service) Summary(ctx context.Context, petID string, tr TimeRange) (HealthSummary, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || tr.Days() <= 0 {
		return HealthSummary{}, ErrInvalidInput
	}

	items, err := s.ListByPet(ctx, petID, Filter{WithinDays: tr.Days()})
	if err != nil {
		return HealthSummary{}, err
	}

	return HealthSummary{
		PetID:        petID,
		TimeRange:    tr,
		TotalRecords: len(items),
	}, nil
}

// DeleteByPet implementa pets.Cascade.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}

func (s *Service) validate(rec HealthRecord) error {
	if rec.Title == "" {
		return fmt.Errorf("%w: record title cannot be empty", ErrInvalidInput)
	}
	if !ValidRecordType(rec.Type) {
		return fmt.Errorf("%w: unknown record type %q", ErrInvalidInput, rec.Type)
	}
	if !ValidSeverity(rec.Severity) {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, rec.Severity)
	}
	return nil
}

func buildAttachments(in []AttachmentInput, now time.Time) ([]Attachment, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Attachment, 0, len(in))
	for _, a := range in {
		name := strings.TrimSpace(a.FileName)
		if name == "" {
			return nil, fmt.Errorf("%w: attachment file name cannot be empty", ErrInvalidInput)
		}
		if !ValidFileType(a.FileType) {
			return nil, fmt.Errorf("%w: unknown attachment type %q", ErrInvalidInput, a.FileType)
		}
		out = append(out, Attachment{
			ID:         uuid.NewString(),
			FileName:   name,
			FileType:   a.FileType,
			FilePath:   strings.TrimSpace(a.FilePath),
			Size:       a.Size,
			UploadedAt: now,
		})
	}
	return out, nil
}
