package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	userQuery := regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "is_active"}).
			AddRow(1, "kopite", "kopite@example.com", true)
		mock.ExpectQuery(userQuery).WithArgs("kopite", 1).WillReturnRows(rows)
		mock.ExpectQuery(`SELECT \* FROM "profiles"`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "first_name", "last_name", "team_id"}).
				AddRow(1, 1, "Jo", "Kop", 64))

		user, err := repo.GetByUsername(ctx, "kopite")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "kopite", user.Username)
		assert.Equal(t, 64, user.Profile.TeamID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery(userQuery).WithArgs("ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Search(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Filters Case-Insensitively And Excludes Caller", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(2, "kopite", "kopite@example.com")
		mock.ExpectQuery(regexp.QuoteMeta(`LOWER(username) LIKE`)).
			WithArgs(1, "%kop%").
			WillReturnRows(rows)
		mock.ExpectQuery(`SELECT \* FROM "profiles"`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(2, 2))

		users, err := repo.Search(ctx, 1, "KOP")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "kopite", users[0].Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Query Matches Everyone Else", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id != $1`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

		users, err := repo.Search(ctx, 1, "")
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
