package illnesses

import "context"

type Repository interface {
	// List devuelve primero el catálogo predefinido y luego las personalizadas,
	// en orden de alta.
	List(ctx context.Context) ([]Illness, error)
	GetByID(ctx context.Context, id string) (Illness, error)

	// CreateCustom agrega una enfermedad personalizada (IsPredefined=false).
	CreateCustom(ctx context.Context, ill Illness) error

	// UpdateCustom / DeleteCustom solo encuentran entre las personalizadas;
	// un id predefinido devuelve not found.
	UpdateCustom(ctx context.Context, ill Illness) error
	DeleteCustom(ctx context.Context, id string) error
}
