package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestSessionFind(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	record := []byte(`{"username":"admin","role":"admin","name":"Quản trị viên","id":"admin"}`)
	rows := sqlmock.NewRows([]string{"record"}).AddRow(record)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT record FROM sessions WHERE key = $1")).
		WithArgs("k1").
		WillReturnRows(rows)

	raw, err := repo.Find(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, record, raw)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec("INSERT INTO sessions").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), "k1", []byte(`{"role":"teacher"}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE key = $1")).
		WithArgs("k1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "k1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
