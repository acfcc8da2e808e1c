package adoptions

import "time"

// Adoption vincula un usuario con una mascota. Una mascota aparece en a lo
// sumo una adopción activa; los registros nunca se actualizan, solo se listan.
type Adoption struct {
	ID string

	OwnerID string // user
	PetID   string

	CreatedAt time.Time
}
