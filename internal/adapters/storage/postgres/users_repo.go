package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"adoptme/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email,
			password_hash, role, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrDuplicateEmail
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email,
		       password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email,
		       password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email,
		       password_hash, role, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		var role string
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email,
			&u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		u.Role = users.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $2,
		    last_name = $3,
		    email = $4,
		    password_hash = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	if err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}

// 23505 = unique_violation (índice único de email)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
