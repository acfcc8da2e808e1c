package pets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) { return nil, nil }

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
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
	return fmt.Sprintf("pet-%d", g.n)
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreate(t *testing.T) {
	svc := NewService(newTestRepo(), &seqIDs{})

	p, err := svc.Create(context.Background(), CreateInput{
		Name:      "Bobby",
		Specie:    "Perro",
		BirthDate: date("2022-06-15"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected a generated id")
	}
	if p.Adopted {
		t.Fatal("new pet must start available")
	}
}

func TestCreate_IncompleteValues(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &seqIDs{})

	cases := []CreateInput{
		{Specie: "Perro", BirthDate: date("2022-06-15")},
		{Name: "Bobby", BirthDate: date("2022-06-15")},
		{Name: "Bobby", Specie: "Perro"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrIncompleteValues) {
			t.Fatalf("input %+v: expected ErrIncompleteValues, got %v", in, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatal("failed creates must not persist")
	}
}

func TestUpdate_PreservesAdoptionState(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &seqIDs{})

	p, err := svc.Create(context.Background(), CreateInput{
		Name: "Bobby", Specie: "Perro", BirthDate: date("2022-06-15"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// simula adopción previa
	adopted := repo.byID[p.ID]
	adopted.Adopted = true
	adopted.OwnerID = "user-1"
	repo.byID[p.ID] = adopted

	err = svc.Update(context.Background(), p.ID, CreateInput{
		Name: "Bobby Updated", Specie: "cat", BirthDate: date("2022-06-15"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.byID[p.ID]
	if got.Name != "Bobby Updated" || got.Specie != "cat" {
		t.Fatalf("fields not replaced: %+v", got)
	}
	if !got.Adopted || got.OwnerID != "user-1" {
		t.Fatalf("update must not touch adoption state: %+v", got)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo(), &seqIDs{})

	err := svc.Update(context.Background(), "ghost", CreateInput{
		Name: "Bobby", Specie: "Perro", BirthDate: date("2022-06-15"),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
