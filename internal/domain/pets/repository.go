package pets

import (
	"context"
	"errors"
)

var (
	// ErrNotFound también cubre ids malformados: se resuelven como
	// not found, nunca como error fatal.
	ErrNotFound = errors.New("pet not found")

	// ErrAlreadyAdopted lo devuelve el claim atómico de disponibilidad
	// (compare-and-set sobre Adopted) cuando la mascota ya tiene dueño.
	ErrAlreadyAdopted = errors.New("pet already adopted")
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	// Update reemplaza solo el perfil (name, specie, birth_date). El estado
	// de adopción es propiedad del claim y nunca se pisa desde acá.
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
