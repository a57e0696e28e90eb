package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/catalog-service/internal/core/domain"
)

func TestMySQLContributorAdapter_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewMySQLContributorAdapter(db)

	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(`SELECT .+ FROM contributors WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "created_at", "updated_at"},
		).AddRow(1, "Alice", "alice@example.com", now, now))

	c, err := adapter.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "alice@example.com", c.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLContributorAdapter_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewMySQLContributorAdapter(db)

	mock.ExpectQuery(`SELECT .+ FROM contributors WHERE id = \?`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLContributorAdapter_Create(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewMySQLContributorAdapter(db)

	mock.ExpectExec(`INSERT INTO contributors`).
		WillReturnResult(sqlmock.NewResult(5, 1))

	c, err := adapter.Create(context.Background(), domain.Contributor{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLContributorAdapter_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewMySQLContributorAdapter(db)

	mock.ExpectExec(`DELETE FROM contributors WHERE id = \?`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Delete(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
