package ident

import "github.com/google/uuid"

// Generator produce identificadores únicos y URL-safe para entidades nuevas.
// Se inyecta en los services para poder usar generadores deterministas en tests.
type Generator interface {
	NewID() string
}

// UUID genera identificadores v4 (random).
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}
