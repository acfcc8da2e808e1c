package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"adoptme/internal/domain/pets"
)

type PetRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	order []string
}

func NewPetRepo() *PetRepo {
	return &PetRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}

	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[p.ID]
	if !ok {
		return pets.ErrNotFound
	}
	// Solo se reemplaza el perfil: el estado de adopción manda el registro
	// guardado, igual que el UPDATE parcial del adaptador de Postgres.
	p.Adopted = current.Adopted
	p.OwnerID = current.OwnerID
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}

	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// claim es el compare-and-set de disponibilidad: exactamente un caller
// concurrente lo gana. Equivale al UPDATE condicional de Postgres.
func (r *PetRepo) claim(petID, ownerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted {
		return pets.ErrAlreadyAdopted
	}

	p.Adopted = true
	p.OwnerID = ownerID
	p.UpdatedAt = at
	r.byID[petID] = p
	return nil
}
