package weights

import "time"

// Rango válido de peso en kg para una mascota doméstica.
const (
	MinWeightKg = 0.5
	MaxWeightKg = 15.0
)

// WeightRecord es una medición de peso con fecha, ligada a una mascota.
type WeightRecord struct {
	ID    string
	PetID string

	Weight float64 // kg
	Date   time.Time
	Notes  string
}
