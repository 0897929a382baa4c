package weights

import "context"

type Repository interface {
	Create(ctx context.Context, rec WeightRecord) error
	Update(ctx context.Context, rec WeightRecord) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (WeightRecord, error)

	// ListByPet devuelve las mediciones ordenadas por fecha descendente.
	// El índice 0 es siempre la más reciente; empates de fecha conservan el
	// orden de inserción (orden estable).
	ListByPet(ctx context.Context, petID string) ([]WeightRecord, error)

	// DeleteByPet borra todas las mediciones de la mascota (cascade).
	DeleteByPet(ctx context.Context, petID string) error
}
