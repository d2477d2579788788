package repository

import (
	"context"
	"testing"

	authdomain "findit-backend/internal/auth/domain"
	"findit-backend/internal/schema"
	"findit-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &authdomain.User{Name: "Ana", Email: "ana@x.io", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@x.io")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Ana", byID.Name)
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByEmail(ctx, "nobody@x.io")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &authdomain.User{Name: "A", Email: "dup@x.io", Password: "h"}))
	err := repo.Create(ctx, &authdomain.User{Name: "B", Email: "dup@x.io", Password: "h"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &authdomain.User{Name: "Ana", Email: "ana@x.io", Password: "hash", Phone: "0123456789"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdateProfile(ctx, user.ID, map[string]interface{}{"phone": "9876543210"}))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got.Phone)
	assert.Equal(t, "Ana", got.Name)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
