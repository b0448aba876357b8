package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbot/internal/model"
	"inbot/internal/repository"
)

var userCols = []string{"id", "name", "email", "password_hash", "bio", "avatar_url", "avatar_path", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	u := &model.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, now).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(u.ID, u.Name, u.Email, u.PasswordHash, "", "", "", now))

		out, err := repo.Create(ctx, u)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", out.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		out, err := repo.Create(ctx, u)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, out)
	})

	t.Run("other error passes through", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("conn closed"))

		_, err := repo.Create(ctx, u)

		assert.EqualError(t, err, "conn closed")
	})
}

func TestUserPostgres_LookupsAndUpdates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user-1", "Ada", "ada@example.com", "hash", "", "", "", now))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user-1", "Ada", "ada@example.com", "hash", "", "", "", now))
	mock.ExpectQuery("UPDATE users SET name = \\$2, bio = \\$3").
		WithArgs("user-1", "Ada L.", "math").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user-1", "Ada L.", "ada@example.com", "hash", "math", "", "", now))
	mock.ExpectQuery("UPDATE users SET avatar_url = \\$2, avatar_path = \\$3").
		WithArgs("user-1", "http://minio/inbot/avatars/user-1/a.png", "avatars/user-1/a.png").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user-1", "Ada L.", "ada@example.com", "hash", "math", "http://minio/inbot/avatars/user-1/a.png", "avatars/user-1/a.png", now))

	u, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.PasswordHash)

	u, err = repo.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)

	u, err = repo.UpdateProfile(ctx, "user-1", "Ada L.", "math")
	require.NoError(t, err)
	assert.Equal(t, "math", u.Bio)

	u, err = repo.UpdateAvatar(ctx, "user-1", "http://minio/inbot/avatars/user-1/a.png", "avatars/user-1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/user-1/a.png", u.AvatarPath)

	assert.NoError(t, mock.ExpectationsWereMet())
}
