package illnesses

// Catalog devuelve el catálogo predefinido de enfermedades felinas comunes.
// IDs fijos: el catálogo actúa como datos semilla estables entre reinicios.
func Catalog() []Illness {
	return []Illness{
		{
			ID:           "1",
			Name:         "Upper Respiratory Infection",
			Icon:         "lungs",
			Description:  "Common cold-like symptoms in cats",
			IsPredefined: true,
			Category:     CategoryRespiratory,
			Contagious:   true,
		},
		{
			ID:           "2",
			Name:         "Vomiting",
			Icon:         "stomach",
			Description:  "Gastrointestinal upset",
			IsPredefined: true,
			Category:     CategoryDigestive,
		},
		{
			ID:           "3",
			Name:         "Skin Allergy",
			Icon:         "pawprint",
			Description:  "Itchy skin and rashes",
			IsPredefined: true,
			Category:     CategorySkin,
		},
		{
			ID:           "4",
			Name:         "Dental Disease",
			Icon:         "tooth",
			Description:  "Gum disease and tooth decay",
			IsPredefined: true,
			Category:     CategoryDental,
		},
		{
			ID:           "5",
			Name:         "Conjunctivitis",
			Icon:         "eye",
			Description:  "Eye inflammation",
			IsPredefined: true,
			Category:     CategoryEye,
		},
		{
			ID:           "6",
			Name:         "Ear Infection",
			Icon:         "ear",
			Description:  "Bacterial or fungal ear infection",
			IsPredefined: true,
			Category:     CategoryEar,
		},
	}
}
