package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
}

// Cascade es implementado por los módulos que guardan registros dependientes
// de una mascota (health records, weight records). Al borrar la mascota se
// invoca DeleteByPet en cada uno, en el mismo orden en que fueron registrados.
type Cascade interface {
	DeleteByPet(ctx context.Context, petID string) error
}
