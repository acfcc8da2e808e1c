package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound cubre también ids malformados: un id que no matchea
	// ningún registro se resuelve como not found, nunca como error fatal.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail lo garantiza el storage (índice único en Postgres,
	// chequeo bajo el write lock en memoria), no un lock de aplicación.
	ErrDuplicateEmail = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
