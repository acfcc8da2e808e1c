package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -------------------------
// Fakes deterministas
// -------------------------

type testRepo struct {
	byID  map[string]User
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, other := range r.byID {
		if other.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fakeHasher marca el texto en vez de hashearlo, para poder afirmar
// sobre lo guardado sin costo bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	return NewService(repo, &seqIDs{}, fakeHasher{}), repo
}

// -------------------------
// Tests
// -------------------------

func TestCreate_HashesPasswordAndAssignsID(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "testuser@example.com",
		Password:  "TestPassword123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected a generated id")
	}
	if u.PasswordHash != "hashed:TestPassword123" {
		t.Fatalf("password must be stored hashed, got %q", u.PasswordHash)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role user, got %q", u.Role)
	}

	got, err := repo.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Email != "testuser@example.com" || got.FirstName != "Test" {
		t.Fatalf("persisted fields differ: %+v", got)
	}
}

func TestCreate_IncompleteValues(t *testing.T) {
	svc, repo := newTestService()

	cases := []CreateInput{
		{LastName: "User", Email: "a@b.com", Password: "x"},
		{FirstName: "Test", Email: "a@b.com", Password: "x"},
		{FirstName: "Test", LastName: "User", Password: "x"},
		{FirstName: "Test", LastName: "User", Email: "a@b.com"},
		{FirstName: "  ", LastName: "User", Email: "a@b.com", Password: "x"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrIncompleteValues) {
			t.Fatalf("input %+v: expected ErrIncompleteValues, got %v", in, err)
		}
	}

	if len(repo.byID) != 0 {
		t.Fatalf("failed creates must not persist, repo has %d users", len(repo.byID))
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	in := CreateInput{FirstName: "Test", LastName: "User", Email: "a@b.com", Password: "x"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdate_ReplacesFieldsAndRehashes(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Test", LastName: "User", Email: "a@b.com", Password: "old",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Update(context.Background(), u.ID, CreateInput{
		FirstName: "Daniel", LastName: "Olarte", Email: "d@o.com", Password: "new",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.byID[u.ID]
	if got.FirstName != "Daniel" || got.Email != "d@o.com" {
		t.Fatalf("fields not replaced: %+v", got)
	}
	if got.PasswordHash != "hashed:new" {
		t.Fatalf("password must be rehashed on update, got %q", got.PasswordHash)
	}
	if !strings.HasPrefix(got.PasswordHash, "hashed:") {
		t.Fatalf("stored value is not a hash: %q", got.PasswordHash)
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), "missing", CreateInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "x",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	err = svc.Update(context.Background(), "missing", CreateInput{FirstName: "A"})
	if !errors.Is(err, ErrIncompleteValues) {
		t.Fatalf("expected ErrIncompleteValues before hitting the repo, got %v", err)
	}
}

func TestDelete_UnknownID(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
