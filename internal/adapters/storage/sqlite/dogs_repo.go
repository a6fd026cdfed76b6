package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dog-registry/internal/domain/dogs"
)

const createDogsTable = `
	CREATE TABLE IF NOT EXISTS dogs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		breed TEXT NOT NULL
	)
`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type DogsRepo struct {
	db *sql.DB
}

var _ dogs.Repository = (*DogsRepo)(nil)

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDogsTable); err != nil {
		return fmt.Errorf("create dogs table: %w", err)
	}
	return nil
}

// SeedIfEmpty corre conteo + inserts en una transacción IMMEDIATE (ver Open):
// un segundo proceso espera el lock y después ve las filas ya insertadas.
func (r *DogsRepo) SeedIfEmpty(ctx context.Context, seeds []dogs.Dog) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM dogs`).Scan(&n); err != nil {
		return false, fmt.Errorf("count dogs: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	for _, d := range seeds {
		if err := insertDog(ctx, tx, d); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}
	return true, nil
}

func (r *DogsRepo) Insert(ctx context.Context, d dogs.Dog) error {
	return insertDog(ctx, r.db, d)
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, breed FROM dogs`)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var d dogs.Dog
		if err := rows.Scan(&d.ID, &d.Name, &d.Breed); err != nil {
			return nil, fmt.Errorf("scan dog: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dogs: %w", err)
	}
	return out, nil
}

// Delete compara el id exacto, sin normalizar.
func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete dog: %w", err)
	}
	return nil
}

func (r *DogsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dogs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count dogs: %w", err)
	}
	return n, nil
}

func insertDog(ctx context.Context, ex execer, d dogs.Dog) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO dogs (id, name, breed)
		VALUES (?, ?, ?)
	`, d.ID, d.Name, d.Breed)
	if err != nil {
		return fmt.Errorf("insert dog: %w", err)
	}
	return nil
}
