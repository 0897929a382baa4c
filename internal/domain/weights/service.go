package weights

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

type CreateInput struct {
	Weight float64
	Date   time.Time
	Notes  string
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (WeightRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return WeightRecord{}, ErrInvalidInput
	}
	if err := validWeight(in.Weight); err != nil {
		return WeightRecord{}, err
	}

	rec := WeightRecord{
		ID:     uuid.NewString(),
		PetID:  petID,
		Weight: in.Weight,
		Date:   in.Date,
		Notes:  strings.TrimSpace(in.Notes),
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return WeightRecord{}, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id string, in CreateInput) (WeightRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return WeightRecord{}, ErrInvalidInput
	}
	if err := validWeight(in.Weight); err != nil {
		return WeightRecord{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return WeightRecord{}, ErrNotFound
	}

	rec := WeightRecord{
		ID:     current.ID,
		PetID:  current.PetID,
		Weight: in.Weight,
		Date:   in.Date,
		Notes:  strings.TrimSpace(in.Notes),
	}
	if rec.Date.IsZero() {
		rec.Date = current.Date
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return WeightRecord{}, err
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

func (s *Service) GetByID(ctx context.Context, id string) (WeightRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return WeightRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ListByPet devuelve las mediciones más recientes primero.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]WeightRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

// Latest devuelve la medición más reciente, o nil si no hay ninguna.
// La ausencia de datos no es un error.
func (s *Service) Latest(ctx context.Context, petID string) (*WeightRecord, error) {
	items, err := s.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	rec := items[0]
	return &rec, nil
}

// Delta devuelve (última − anterior) medición. Positivo = subió de peso.
// nil si hay menos de dos mediciones; nunca se degrada a cero.
func (s *Service) Delta(ctx context.Context, petID string) (*float64, error) {
	items, err := s.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return nil, nil
	}
	d := items[0].Weight - items[1].Weight
	return &d, nil
}

// DeleteByPet implementa pets.Cascade.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}

func validWeight(w float64) error {
	if w < MinWeightKg || w > MaxWeightKg {
		return fmt.Errorf("%w: weight must be between %.1f and %.1f kg", ErrInvalidInput, MinWeightKg, MaxWeightKg)
	}
	return nil
}
