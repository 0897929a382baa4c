package memory

import (
	"context"
	"fmt"
	"time"

	"pawcare-service/internal/domain/auth"
	"pawcare-service/internal/domain/pets"
	"pawcare-service/internal/domain/records"
	"pawcare-service/internal/domain/weights"
)

const (
	DemoUserID = "demo-user"
	DemoPetID  = "demo-pet-whiskers"
)

// SeedDemo carga datos de demostración: un usuario, una gata (Whiskers) con
// historial de peso mensual y un par de registros de salud. IDs deterministas
// para poder usarlos con X-Debug-User-ID en dev.
func SeedDemo(ctx context.Context, now time.Time, usersRepo auth.Repository, petsRepo pets.Repository, recordsRepo records.Repository, weightsRepo weights.Repository) error {
	now = now.UTC()

	if err := usersRepo.Create(ctx, auth.User{
		ID:          DemoUserID,
		Email:       "demo@pawcare.dev",
		DisplayName: "demo",
		Language:    auth.LanguageEnglish,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return err
	}

	birth := time.Date(now.Year()-3, time.March, 12, 0, 0, 0, 0, time.UTC)
	if err := petsRepo.Create(ctx, pets.Pet{
		ID:          DemoPetID,
		OwnerUserID: DemoUserID,
		Name:        "Whiskers",
		Species:     pets.SpeciesCat,
		Breed:       "British Shorthair",
		Gender:      pets.GenderFemale,
		BirthDate:   birth,
		IsNeutered:  true,
		Allergens:   []string{"chicken"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return err
	}

	// 9 mediciones mensuales, la más vieja primero; leve tendencia a la baja.
	kgs := []float64{4.8, 4.8, 4.7, 4.6, 4.6, 4.5, 4.4, 4.4, 4.2}
	for i, kg := range kgs {
		rec := weights.WeightRecord{
			ID:     fmt.Sprintf("%s-w%d", DemoPetID, i+1),
			PetID:  DemoPetID,
			Weight: kg,
			Date:   now.AddDate(0, -(len(kgs) - 1 - i), 0),
		}
		if err := weightsRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	reminder := now.AddDate(1, 0, 0)
	seedRecords := []records.HealthRecord{
		{
			ID:           DemoPetID + "-r1",
			PetID:        DemoPetID,
			Type:         records.TypeVaccination,
			Severity:     records.SeverityMild,
			Title:        "Rabies vaccine",
			Veterinarian: "Dr. Lin",
			OccurredAt:   now.AddDate(0, -2, 0),
			RecordedAt:   now.AddDate(0, -2, 0),
			ReminderAt:   &reminder,
		},
		{
			ID:         DemoPetID + "-r2",
			PetID:      DemoPetID,
			IllnessID:  "2", // Vomiting
			Type:       records.TypeSymptom,
			Severity:   records.SeverityMild,
			Title:      "Vomited after breakfast",
			Notes:      "Ate too fast; fine by the afternoon.",
			OccurredAt: now.AddDate(0, 0, -5),
			RecordedAt: now.AddDate(0, 0, -5),
		},
	}
	for _, rec := range seedRecords {
		if err := recordsRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	return nil
}
