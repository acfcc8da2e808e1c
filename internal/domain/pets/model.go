package pets

import "time"

// Pet representa una mascota registrada para adopción.
// Adopted pasa de false a true una sola vez (ver adoptions); no hay
// transición de vuelta expuesta por la API.
type Pet struct {
	ID string

	Name      string
	Specie    string
	BirthDate time.Time

	Adopted bool
	OwnerID string // user id cuando Adopted

	CreatedAt time.Time
	UpdatedAt time.Time
}
