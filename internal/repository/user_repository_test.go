package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_FindByEmailOrUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "username"}).
		AddRow("user-1", "Alan Athlete", "alan@example.com", "alan")
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE \(LOWER\(email\) = LOWER\(\$1\) OR LOWER\(username\) = LOWER\(\$2\)\)`).
		WithArgs("alan@example.com", "alan@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmailOrUsername("alan@example.com", "alan@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "alan", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailOrUsername_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("nobody", "nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmailOrUsername("nobody", "nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("no-such-id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID("no-such-id")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
