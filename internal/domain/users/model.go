package users

import "time"

// Role distingue usuarios comunes de administradores.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta registrada en el sistema.
// PasswordHash guarda el hash bcrypt; el texto plano nunca se persiste
// ni se incluye en respuestas.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string

	PasswordHash string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
