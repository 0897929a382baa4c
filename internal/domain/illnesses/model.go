package illnesses

// Category agrupa enfermedades por sistema afectado.
type Category string

const (
	CategoryRespiratory Category = "respiratory"
	CategoryDigestive   Category = "digestive"
	CategorySkin        Category = "skin"
	CategoryDental      Category = "dental"
	CategoryEye         Category = "eye"
	CategoryEar         Category = "ear"
	CategoryOther       Category = "other"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryRespiratory, CategoryDigestive, CategorySkin,
		CategoryDental, CategoryEye, CategoryEar, CategoryOther:
		return true
	}
	return false
}

// Commonality indica con qué frecuencia aparece un síntoma para la enfermedad.
type Commonality string

const (
	CommonalityRare       Commonality = "rare"
	CommonalitySometimes  Commonality = "sometimes"
	CommonalityCommon     Commonality = "common"
	CommonalityVeryCommon Commonality = "very_common"
)

type Symptom struct {
	ID   string
	Name string

	Commonality     Commonality
	TypicalSeverity string // mild | moderate | severe
}

// Illness es una condición del catálogo fijo o definida por el usuario.
// Las entradas predefinidas (IsPredefined) son datos semilla inmutables:
// update y delete solo buscan entre las personalizadas.
type Illness struct {
	ID          string
	Name        string
	Icon        string
	Description string

	IsPredefined bool
	Category     Category

	Symptoms []Symptom
	Aliases  []string

	Contagious       bool
	EmergencyWarning bool
	HomeCareTips     string
}
