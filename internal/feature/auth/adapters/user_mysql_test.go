package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"axie_backend/internal/feature/auth/domain/entity"
	"axie_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError maps the driver's duplicate-key error onto
// gorm.ErrDuplicatedKey, matching what the MySQL driver reports in
// production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	u := &entity.User{Username: "alice", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
}

func TestUserMySQL_Create_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", Password: "hashed"}))

	err := repo.Create(ctx, &entity.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
}

func TestUserMySQL_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", Password: "hashed"}))

	t.Run("found", func(t *testing.T) {
		u, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "hashed", u.Password)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "bob")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	created := &entity.User{Username: "alice", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, created))

	t.Run("found", func(t *testing.T) {
		u, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
