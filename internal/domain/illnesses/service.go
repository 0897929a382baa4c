package illnesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SymptomInput struct {
	Name            string
	Commonality     Commonality
	TypicalSeverity string
}

type CustomInput struct {
	Name        string
	Icon        string
	Description string
	Category    Category

	Symptoms []SymptomInput
	Aliases  []string

	Contagious       bool
	EmergencyWarning bool
	HomeCareTips     string
}

// GetAll devuelve catálogo predefinido + personalizadas.
func (s *Service) GetAll(ctx context.Context) ([]Illness, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Illness, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Illness{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) AddCustom(ctx context.Context, in CustomInput) (Illness, error) {
	ill, err := buildCustom(uuid.NewString(), in)
	if err != nil {
		return Illness{}, err
	}

	if err := s.repo.CreateCustom(ctx, ill); err != nil {
		return Illness{}, err
	}
	return ill, nil
}

// UpdateCustom reemplaza una enfermedad personalizada. Un id predefinido
// no se encuentra entre las personalizadas y devuelve ErrNotFound.
func (s *Service) UpdateCustom(ctx context.Context, id string, in CustomInput) (Illness, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Illness{}, ErrInvalidInput
	}

	ill, err := buildCustom(id, in)
	if err != nil {
		return Illness{}, err
	}

	if err := s.repo.UpdateCustom(ctx, ill); err != nil {
		return Illness{}, ErrNotFound
	}
	return ill, nil
}

func (s *Service) DeleteCustom(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.DeleteCustom(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

func buildCustom(id string, in CustomInput) (Illness, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Illness{}, fmt.Errorf("%w: illness name cannot be empty", ErrInvalidInput)
	}

	cat := in.Category
	if cat == "" {
		cat = CategoryOther
	}
	if !ValidCategory(cat) {
		return Illness{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, cat)
	}

	symptoms := make([]Symptom, 0, len(in.Symptoms))
	for _, sym := range in.Symptoms {
		n := strings.TrimSpace(sym.Name)
		if n == "" {
			continue
		}
		c := sym.Commonality
		if c == "" {
			c = CommonalityCommon
		}
		sev := strings.TrimSpace(sym.TypicalSeverity)
		if sev == "" {
			sev = "mild"
		}
		symptoms = append(symptoms, Symptom{
			ID:              uuid.NewString(),
			Name:            n,
			Commonality:     c,
			TypicalSeverity: sev,
		})
	}

	aliases := make([]string, 0, len(in.Aliases))
	for _, a := range in.Aliases {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}

	return Illness{
		ID:               id,
		Name:             name,
		Icon:             strings.TrimSpace(in.Icon),
		Description:      strings.TrimSpace(in.Description),
		IsPredefined:     false,
		Category:         cat,
		Symptoms:         symptoms,
		Aliases:          aliases,
		Contagious:       in.Contagious,
		EmergencyWarning: in.EmergencyWarning,
		HomeCareTips:     strings.TrimSpace(in.HomeCareTips),
	}, nil
}
