package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"adoptme/internal/platform/ident"
)

var ErrIncompleteValues = errors.New("incomplete values")

type Service struct {
	repo Repository
	ids  ident.Generator
	now  func() time.Time
}

func NewService(repo Repository, ids ident.Generator) *Service {
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Specie    string
	BirthDate *time.Time
}

func (in CreateInput) incomplete() bool {
	return strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Specie) == "" ||
		in.BirthDate == nil
}

// Create valida los tres campos requeridos y persiste la mascota,
// siempre disponible (Adopted=false) al nacer.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.incomplete() {
		return Pet{}, ErrIncompleteValues
	}

	now := s.now()
	p := Pet{
		ID:        s.ids.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Specie:    strings.TrimSpace(in.Specie),
		BirthDate: *in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Update reemplaza los campos mutables (name, specie, birthDate).
// No toca Adopted ni OwnerID: eso es territorio del módulo adoptions.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) error {
	if in.incomplete() {
		return ErrIncompleteValues
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Specie = strings.TrimSpace(in.Specie)
	current.BirthDate = *in.BirthDate
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
