package persistence

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectUserByUserName = `SELECT u.id, u.name, u.user_name, u.password, u.created_at, u.updated_at`

func TestUserRepositoryGetByUserName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "user_name", "password", "created_at", "updated_at"}).
		AddRow(101, "Lambok", "lambok", "hashed", time.Now(), time.Now())
	mock.ExpectPrepare(regexp.QuoteMeta(selectUserByUserName)).
		ExpectQuery().
		WithArgs("lambok").
		WillReturnRows(rows)

	user, err := repo.GetByUserName(context.Background(), "lambok")

	require.NoError(t, err)
	assert.Equal(t, int64(101), user.ID)
	assert.Equal(t, "lambok", user.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByUserNameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(selectUserByUserName)).
		ExpectQuery().
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByUserName(context.Background(), "ghost")

	assert.Error(t, err)
}
