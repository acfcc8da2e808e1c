package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"adoptme/internal/platform/ident"
	"adoptme/internal/platform/passwords"
)

var ErrIncompleteValues = errors.New("incomplete values")

type Service struct {
	repo   Repository
	ids    ident.Generator
	hasher passwords.Hasher
	now    func() time.Time
}

func NewService(repo Repository, ids ident.Generator, hasher passwords.Hasher) *Service {
	return &Service{
		repo:   repo,
		ids:    ids,
		hasher: hasher,
		now:    time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (in CreateInput) incomplete() bool {
	return strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == ""
}

// Create valida los cuatro campos requeridos, hashea la contraseña y
// persiste el usuario con un id nuevo.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if in.incomplete() {
		return User{}, ErrIncompleteValues
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           s.ids.NewID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Update reemplaza todos los campos mutables (replace completo, no patch).
// La contraseña entrante se vuelve a hashear.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) error {
	if in.incomplete() {
		return ErrIncompleteValues
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return err
	}

	current.FirstName = strings.TrimSpace(in.FirstName)
	current.LastName = strings.TrimSpace(in.LastName)
	current.Email = strings.TrimSpace(in.Email)
	current.PasswordHash = hash
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
