package pets

import "time"

// Species define las especies soportadas.
// @Enum cat, dog, other
type Species string

const (
	SpeciesCat   Species = "cat"
	SpeciesDog   Species = "dog"
	SpeciesOther Species = "other"
)

// Gender define el género de la mascota.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Pet representa el perfil de una mascota registrada en el sistema.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string // texto libre; ver CommonBreeds para sugerencias
	Gender  Gender

	BirthDate  time.Time
	IsNeutered bool

	Allergens         []string
	ChronicConditions []string

	AvatarURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age devuelve la edad en años completos a la fecha dada.
// Siempre es derivada de BirthDate, nunca se guarda.
func (p Pet) Age(now time.Time) int {
	if p.BirthDate.IsZero() || now.Before(p.BirthDate) {
		return 0
	}
	years := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// CommonBreeds devuelve razas típicas por especie, para sugerencias de UI.
func CommonBreeds(s Species) []string {
	switch s {
	case SpeciesCat:
		return []string{
			"Domestic Shorthair",
			"British Shorthair",
			"Siamese",
			"Persian",
			"Ragdoll",
			"Bengal",
			"Maine Coon",
		}
	case SpeciesDog:
		return []string{
			"Labrador Retriever",
			"Golden Retriever",
			"French Bulldog",
			"Poodle",
			"German Shepherd",
			"Shiba Inu",
			"Corgi",
		}
	default:
		return nil
	}
}

// ValidSpecies valida el valor del enum (acepta vacío como "no enviado").
func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesCat, SpeciesDog, SpeciesOther:
		return true
	}
	return false
}

func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}
