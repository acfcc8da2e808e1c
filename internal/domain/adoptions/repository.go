package adoptions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("adoption not found")

type Repository interface {
	// Create aplica la transición completa como una unidad: marca la mascota
	// como adoptada (write condicional sobre Adopted=false) y guarda el
	// registro. Devuelve pets.ErrAlreadyAdopted si otro adopt ganó la carrera
	// y pets.ErrNotFound si la mascota desapareció; en ambos casos no queda
	// mutación visible.
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
