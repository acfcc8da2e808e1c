package postgres

import (
	"context"
	"database/sql"
	"errors"

	"adoptme/internal/domain/adoptions"
	"adoptme/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Create hace claim + insert dentro de una transacción. El UPDATE condicional
// sobre adopted=false es el que decide la carrera: cero filas afectadas
// significa mascota adoptada (o borrada en el medio) y rollback.
func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE,
		    owner_id = $2,
		    updated_at = $3
		WHERE id = $1 AND adopted = FALSE
	`, a.PetID, a.OwnerID, a.CreatedAt)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, a.PetID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return pets.ErrNotFound
		}
		return pets.ErrAlreadyAdopted
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoptions (id, owner_id, pet_id, created_at)
		VALUES ($1,$2,$3,$4)
	`, a.ID, a.OwnerID, a.PetID, a.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id, created_at
		FROM adoptions
		WHERE id = $1
	`, id)

	var a adoptions.Adoption
	if err := row.Scan(&a.ID, &a.OwnerID, &a.PetID, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, created_at
		FROM adoptions
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		var a adoptions.Adoption
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.PetID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
