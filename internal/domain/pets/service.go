package pets

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
	repo     Repository
	cascades []Cascade
	now      func() time.Time
}

func NewService(repo Repository, cascades ...Cascade) *Service {
	return &Service{
		repo:     repo,
		cascades: cascades,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name              string
	Species           Species
	Breed             string
	Gender            Gender
	BirthDate         time.Time
	IsNeutered        bool
	Allergens         []string
	ChronicConditions []string
	AvatarURL         string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:                uuid.NewString(),
		OwnerUserID:       ownerUserID,
		Name:              strings.TrimSpace(in.Name),
		Species:           in.Species,
		Breed:             strings.TrimSpace(in.Breed),
		Gender:            in.Gender,
		BirthDate:         in.BirthDate,
		IsNeutered:        in.IsNeutered,
		Allergens:         cleanList(in.Allergens),
		ChronicConditions: cleanList(in.ChronicConditions),
		AvatarURL:         strings.TrimSpace(in.AvatarURL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if p.Species == "" {
		p.Species = SpeciesCat
	}
	if p.Gender == "" {
		p.Gender = GenderUnknown
	}

	if err := s.validate(p, now); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	Name              string
	Species           Species
	Breed             string
	Gender            Gender
	BirthDate         time.Time
	IsNeutered        bool
	Allergens         []string
	ChronicConditions []string
	AvatarURL         string
}

// Update reemplaza el perfil completo, conservando ID, owner y CreatedAt.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	now := s.now()
	p := Pet{
		ID:                current.ID,
		OwnerUserID:       current.OwnerUserID,
		Name:              strings.TrimSpace(in.Name),
		Species:           in.Species,
		Breed:             strings.TrimSpace(in.Breed),
		Gender:            in.Gender,
		BirthDate:         in.BirthDate,
		IsNeutered:        in.IsNeutered,
		Allergens:         cleanList(in.Allergens),
		ChronicConditions: cleanList(in.ChronicConditions),
		AvatarURL:         strings.TrimSpace(in.AvatarURL),
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         now,
	}

	if p.Species == "" {
		p.Species = current.Species
	}
	if p.Gender == "" {
		p.Gender = current.Gender
	}

	if err := s.validate(p, now); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra la mascota y cascadea sobre sus registros dependientes.
// Un id inexistente devuelve ErrNotFound (ver DESIGN.md, política de borrado).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, c := range s.cascades {
		if err := c.DeleteByPet(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// OwnerOf expone el ownerUserID de una mascota.
// Lo usan otros módulos para autorizar sin importar el paquete completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}

func (s *Service) validate(p Pet, now time.Time) error {
	if p.Name == "" {
		return fmt.Errorf("%w: pet name cannot be empty", ErrInvalidInput)
	}
	if !ValidSpecies(p.Species) {
		return fmt.Errorf("%w: unknown species %q", ErrInvalidInput, p.Species)
	}
	if !ValidGender(p.Gender) {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, p.Gender)
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", ErrInvalidInput)
	}
	if p.Age(now) <= 0 {
		return fmt.Errorf("%w: pet age must be greater than 0", ErrInvalidInput)
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
