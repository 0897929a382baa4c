package records

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec HealthRecord) error
	Update(ctx context.Context, rec HealthRecord) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (HealthRecord, error)

	// ListByPet devuelve los registros en orden de inserción (orden del store);
	// quien necesite otro orden, ordena aparte.
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]HealthRecord, error)

	// DeleteByPet borra todos los registros de la mascota (cascade).
	DeleteByPet(ctx context.Context, petID string) error
}

// ListFilter filtra por tipo, ventana de fechas (inclusive) y texto libre.
type ListFilter struct {
	Types []RecordType
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
}
