package sessions

import (
	"context"
	"errors"
	"strings"

	"adoptme/internal/domain/users"
	"adoptme/internal/platform/passwords"
)

var (
	// ErrBadPassword: credenciales malas sobre un email registrado.
	// Distinto de users.ErrNotFound a propósito (401 vs 404).
	ErrBadPassword = errors.New("incorrect password")

	ErrNotAuthenticated = errors.New("not authenticated")
)

type Service struct {
	users  *users.Service
	hasher passwords.Hasher
	tokens *TokenManager
}

func NewService(usersSvc *users.Service, hasher passwords.Hasher, tokens *TokenManager) *Service {
	return &Service{
		users:  usersSvc,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register delega en el service de usuarios, que valida los cuatro campos
// y guarda la contraseña hasheada. El email duplicado sube como
// users.ErrDuplicateEmail. Devuelve el id del usuario nuevo.
func (s *Service) Register(ctx context.Context, in users.CreateInput) (string, error) {
	u, err := s.users.Create(ctx, in)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// Login autentica contra el hash guardado (nunca comparación en texto plano)
// y emite el token de sesión.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", users.ErrIncompleteValues
	}

	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return "", ErrBadPassword
	}

	return s.tokens.Issue(u)
}

// Current resuelve el usuario detrás de un token de sesión. Cualquier token
// inválido, vencido o de un usuario borrado termina en ErrNotAuthenticated.
func (s *Service) Current(ctx context.Context, token string) (users.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return users.User{}, ErrNotAuthenticated
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return users.User{}, ErrNotAuthenticated
	}
	return u, nil
}
