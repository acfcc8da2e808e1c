package adoptions

import (
	"context"
	"time"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/ident"
)

type Service struct {
	repo  Repository
	users users.Repository
	pets  pets.Repository
	ids   ident.Generator
	now   func() time.Time
}

func NewService(repo Repository, usersRepo users.Repository, petsRepo pets.Repository, ids ident.Generator) *Service {
	return &Service{
		repo:  repo,
		users: usersRepo,
		pets:  petsRepo,
		ids:   ids,
		now:   time.Now,
	}
}

// Adopt verifica que usuario y mascota existan y delega en el repo la
// transición atómica disponible→adoptada. Ante una carrera, exactamente
// un caller recibe la adopción y el resto pets.ErrAlreadyAdopted.
func (s *Service) Adopt(ctx context.Context, userID, petID string) (Adoption, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Adoption{}, err
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Adoption{}, err
	}
	if p.Adopted {
		return Adoption{}, pets.ErrAlreadyAdopted
	}

	a := Adoption{
		ID:        s.ids.NewID(),
		OwnerID:   u.ID,
		PetID:     p.ID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	return s.repo.GetByID(ctx, id)
}
