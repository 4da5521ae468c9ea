package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollectionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlite")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestCollectionRepositoryGet(t *testing.T) {
	db, mock, cleanup := newCollectionRepoMock(t)
	defer cleanup()

	repo := NewCollectionRepository(db, 1024)
	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"ministryLogo":null}`)
	mock.ExpectQuery("SELECT value FROM collections").
		WithArgs("settings").
		WillReturnRows(rows)

	raw, ok, err := repo.Get(context.Background(), "settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"ministryLogo":null}`, string(raw))
}

func TestCollectionRepositoryGetAbsent(t *testing.T) {
	db, mock, cleanup := newCollectionRepoMock(t)
	defer cleanup()

	repo := NewCollectionRepository(db, 1024)
	mock.ExpectQuery("SELECT value FROM collections").
		WithArgs("archive").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	raw, ok, err := repo.Get(context.Background(), "archive")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestCollectionRepositoryPut(t *testing.T) {
	db, mock, cleanup := newCollectionRepoMock(t)
	defer cleanup()

	repo := NewCollectionRepository(db, 1024)
	mock.ExpectExec("INSERT INTO collections").
		WithArgs("directory", `[]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Put(context.Background(), "directory", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepositoryUsage(t *testing.T) {
	db, mock, cleanup := newCollectionRepoMock(t)
	defer cleanup()

	repo := NewCollectionRepository(db, 2048)
	rows := sqlmock.NewRows([]string{"name", "size"}).
		AddRow("archive", int64(300)).
		AddRow("directory", int64(120)).
		AddRow("settings", int64(80))
	mock.ExpectQuery("SELECT name, LENGTH").WillReturnRows(rows)

	usage, err := repo.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(500), usage.UsedBytes)
	assert.Equal(t, int64(2048), usage.QuotaBytes)
	assert.Equal(t, int64(120), usage.Collections["directory"])
}
