package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"adoptme/internal/domain/users"
)

// UserRepo guarda usuarios en memoria. La unicidad de email se garantiza
// bajo el write lock, igual que lo haría un índice único en el storage real.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string // email -> id
	order   []string          // orden de inserción para List
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrDuplicateEmail
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *UserRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[u.ID]
	if !ok {
		return users.ErrNotFound
	}

	if current.Email != u.Email {
		if otherID, exists := r.byEmail[u.Email]; exists && otherID != u.ID {
			return users.ErrDuplicateEmail
		}
		delete(r.byEmail, current.Email)
		r.byEmail[u.Email] = u.ID
	}

	r.byID[u.ID] = u
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
