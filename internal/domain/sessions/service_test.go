package sessions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"adoptme/internal/domain/users"
)

type testUserRepo struct {
	byID map[string]users.User
}

func newTestUserRepo() *testUserRepo {
	return &testUserRepo{byID: map[string]users.User{}}
}

func (r *testUserRepo) Create(ctx context.Context, u users.User) error {
	for _, other := range r.byID {
		if other.Email == u.Email {
			return users.ErrDuplicateEmail
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testUserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *testUserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *testUserRepo) List(ctx context.Context) ([]users.User, error) {
	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testUserRepo) Update(ctx context.Context, u users.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return users.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (*Service, *testUserRepo) {
	repo := newTestUserRepo()
	usersSvc := users.NewService(repo, &seqIDs{}, fakeHasher{})
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewService(usersSvc, fakeHasher{}, tokens), repo
}

var validInput = users.CreateInput{
	FirstName: "Test",
	LastName:  "User",
	Email:     "testuser@example.com",
	Password:  "TestPassword123",
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	svc, repo := newTestService()

	id, err := svc.Register(context.Background(), validInput)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == "" {
		t.Fatal("register must return the new user id")
	}

	u := repo.byID[id]
	if u.PasswordHash != "hashed:TestPassword123" {
		t.Fatalf("expected hashed password stored, got %q", u.PasswordHash)
	}
}

func TestRegister_Incomplete(t *testing.T) {
	svc, repo := newTestService()

	in := validInput
	in.Email = ""
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, users.ErrIncompleteValues) {
		t.Fatalf("expected ErrIncompleteValues, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("failed register must not persist")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Register(context.Background(), validInput); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), validInput); !errors.Is(err, users.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.byID))
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.Register(context.Background(), validInput)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// credenciales incompletas
	if _, err := svc.Login(context.Background(), validInput.Email, ""); !errors.Is(err, users.ErrIncompleteValues) {
		t.Fatalf("expected ErrIncompleteValues, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, users.ErrIncompleteValues) {
		t.Fatalf("expected ErrIncompleteValues, got %v", err)
	}

	// email no registrado
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// contraseña equivocada: error propio, no not found
	if _, err := svc.Login(context.Background(), validInput.Email, "Wrong123"); !errors.Is(err, ErrBadPassword) {
		t.Fatalf("expected ErrBadPassword, got %v", err)
	}

	// ok: token utilizable en Current
	token, err := svc.Login(context.Background(), validInput.Email, validInput.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	u, err := svc.Current(context.Background(), token)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u.ID != id || u.Email != validInput.Email {
		t.Fatalf("current resolved wrong user: %+v", u)
	}
}

func TestCurrent_InvalidToken(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Current(context.Background(), "garbage"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCurrent_DeletedUser(t *testing.T) {
	svc, repo := newTestService()

	id, err := svc.Register(context.Background(), validInput)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := svc.Login(context.Background(), validInput.Email, validInput.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	delete(repo.byID, id)

	if _, err := svc.Current(context.Background(), token); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after delete, got %v", err)
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.Issue(users.User{ID: "id-1", Email: "a@b.com", Role: users.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	fresh := NewTokenManager("test-secret", time.Hour)
	if _, err := fresh.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, err := tm.Issue(users.User{ID: "id-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokenManager("other-secret", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}
