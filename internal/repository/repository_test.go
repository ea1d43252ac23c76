package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/storage/postgresql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testCtx = context.Background()
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf(
		"postgres://test:test@%s:%s/testdb?sslmode=disable",
		host, port.Port(),
	)

	pool, err := postgresql.New(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func TestUserRepository_SaveUser(t *testing.T) {
	pool := setupTestDB(t)

	repo := repository.NewUserRepository(pool)

	t.Run("successful user creation", func(t *testing.T) {
		user := models.User{
			Username:  "tester",
			Email:     "test@example.com",
			Password:  []byte("$2a$10$hash"),
			Role:      models.RoleUser,
			CreatedAt: time.Now().UTC(),
		}

		id, err := repo.SaveUser(testCtx, user)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		var count int
		err = pool.QueryRow(testCtx, "SELECT COUNT(*) FROM users WHERE email = $1", user.Email).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := models.User{
			Username:  "dup1",
			Email:     "duplicate@example.com",
			Password:  []byte("password"),
			Role:      models.RoleUser,
			CreatedAt: time.Now().UTC(),
		}

		_, err := repo.SaveUser(testCtx, user)
		require.NoError(t, err)

		user.Username = "dup2"
		_, err = repo.SaveUser(testCtx, user)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		var conflict *repository.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "email", conflict.Field)
	})
}

func TestUserRepository_Lookup(t *testing.T) {
	pool := setupTestDB(t)

	repo := repository.NewUserRepository(pool)

	id, err := repo.SaveUser(testCtx, models.User{
		Username:  "existing",
		Email:     "existing@example.com",
		Password:  []byte("hashedpassword"),
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("by email", func(t *testing.T) {
		user, err := repo.UserByIdentifier(testCtx, "existing@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, []byte("hashedpassword"), user.Password)
	})

	t.Run("by username", func(t *testing.T) {
		user, err := repo.UserByIdentifier(testCtx, "existing")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("by id", func(t *testing.T) {
		user, err := repo.GetUserById(testCtx, id)
		require.NoError(t, err)
		assert.Equal(t, "existing", user.Username)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := repo.UserByIdentifier(testCtx, "nobody")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})

	t.Run("exists matches either column", func(t *testing.T) {
		exists, err := repo.UserExists(testCtx, "existing", "other@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.UserExists(testCtx, "other", "existing@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.UserExists(testCtx, "other", "other@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("set role", func(t *testing.T) {
		require.NoError(t, repo.SetRole(testCtx, id, models.RoleAdmin))

		user, err := repo.GetUserById(testCtx, id)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())

		assert.ErrorIs(t, repo.SetRole(testCtx, uuid.New(), models.RoleAdmin), storage.ErrUserNotFound)
	})
}
