package memory

import (
	"context"
	"sync"

	"adoptme/internal/domain/adoptions"
)

// AdoptionRepo necesita el PetRepo concreto porque la transición
// disponible→adoptada y el alta del registro son una sola unidad.
type AdoptionRepo struct {
	mu    sync.RWMutex
	byID  map[string]adoptions.Adoption
	order []string

	pets *PetRepo
}

func NewAdoptionRepo(pets *PetRepo) *AdoptionRepo {
	return &AdoptionRepo{
		byID: make(map[string]adoptions.Adoption),
		pets: pets,
	}
}

func (r *AdoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	// El claim es el punto de commit: si falla no quedó nada mutado,
	// si gana, el insert local no puede fallar.
	if err := r.pets.claim(a.PetID, a.OwnerID, a.CreatedAt); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *AdoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *AdoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
