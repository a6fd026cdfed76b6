package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"regexp"
	"testing"

	"dog-registry/internal/adapters/storage/postgres"
	"dog-registry/internal/domain/dogs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*postgres.DogsRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewDogsRepo(db), mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestDogsRepo_EnsureSchema(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(q("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS dogs")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDogsRepo_EnsureSchema_RollsBackOnCreateError(t *testing.T) {
	repo, mock := setupRepo(t)
	driverErr := errors.New("permission denied for schema public")

	mock.ExpectBegin()
	mock.ExpectExec(q("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS dogs")).
		WillReturnError(driverErr)
	mock.ExpectRollback()

	err := repo.EnsureSchema(context.Background())
	assert.ErrorIs(t, err, driverErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDogsRepo_SeedIfEmpty(t *testing.T) {
	seeds := []dogs.Dog{
		{ID: "seed-1", Name: "Comet", Breed: "Whippet"},
		{ID: "seed-2", Name: "Oscar", Breed: "German Shorthaired Pointer"},
	}

	t.Run("inserts seeds in order when empty", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("LOCK TABLE dogs IN SHARE ROW EXCLUSIVE MODE")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(q("SELECT COUNT(*) FROM dogs")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(q("INSERT INTO dogs")).
			WithArgs("seed-1", "Comet", "Whippet").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(q("INSERT INTO dogs")).
			WithArgs("seed-2", "Oscar", "German Shorthaired Pointer").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		seeded, err := repo.SeedIfEmpty(context.Background(), seeds)
		require.NoError(t, err)
		assert.True(t, seeded)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips when rows exist", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("LOCK TABLE dogs")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(q("SELECT COUNT(*) FROM dogs")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		seeded, err := repo.SeedIfEmpty(context.Background(), seeds)
		require.NoError(t, err)
		assert.False(t, seeded)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when an insert fails", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("LOCK TABLE dogs")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(q("SELECT COUNT(*) FROM dogs")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(q("INSERT INTO dogs")).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		seeded, err := repo.SeedIfEmpty(context.Background(), seeds)
		require.Error(t, err)
		assert.False(t, seeded)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDogsRepo_Insert_WrapsDriverError(t *testing.T) {
	repo, mock := setupRepo(t)
	driverErr := errors.New("connection refused")

	mock.ExpectExec(q("INSERT INTO dogs")).
		WithArgs("d1", "Fido", "Beagle").
		WillReturnError(driverErr)

	err := repo.Insert(context.Background(), dogs.Dog{ID: "d1", Name: "Fido", Breed: "Beagle"})
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDogsRepo_List(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(q("SELECT id, name, breed")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "breed"}).
			AddRow("d2", "Oscar", "German Shorthaired Pointer").
			AddRow("d1", "Comet", "Whippet"))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dogs.Dog{
		{ID: "d2", Name: "Oscar", Breed: "German Shorthaired Pointer"},
		{ID: "d1", Name: "Comet", Breed: "Whippet"},
	}, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDogsRepo_List_Empty(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(q("SELECT id, name, breed")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "breed"}))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDogsRepo_Delete(t *testing.T) {
	t.Run("unknown id is not an error", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectExec(q("DELETE FROM dogs WHERE id = $1")).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.Delete(context.Background(), "nope"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("id is matched exactly, whitespace included", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectExec(q("DELETE FROM dogs WHERE id = $1")).
			WithArgs("  abc\t").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.Delete(context.Background(), "  abc\t"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error propagates", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectExec(q("DELETE FROM dogs")).
			WillReturnError(sql.ErrConnDone)

		err := repo.Delete(context.Background(), "d1")
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestDogsRepo_Count(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM dogs")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

// Contra un Postgres real; solo corre si DB_DSN está seteado.
func TestDogsRepo_Integration(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	repo := postgres.NewDogsRepo(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	d := dogs.Dog{ID: "it-" + t.Name(), Name: "Fido", Breed: "Beagle"}
	require.NoError(t, repo.Insert(ctx, d))
	t.Cleanup(func() { _ = repo.Delete(ctx, d.ID) })

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, items, d)

	require.NoError(t, repo.Delete(ctx, d.ID))
	require.NoError(t, repo.Delete(ctx, d.ID))
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := postgres.Open(" ")
	assert.Error(t, err)
}
