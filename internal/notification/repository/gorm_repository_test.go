package repository

import (
	"context"
	"testing"
	"time"

	notificationdomain "findit-backend/internal/notification/domain"
	"findit-backend/internal/schema"
	"findit-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, TokenRepository) {
	t.Helper()
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))
	return db, NewTokenRepository(db)
}

func save(t *testing.T, repo TokenRepository, userID, token string) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), &notificationdomain.FCMToken{UserID: userID, Token: token}))
}

func touch(t *testing.T, db *gorm.DB, token string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&notificationdomain.FCMToken{}).Where("token = ?", token).Update("updated_at", at).Error)
}

func TestSave_LastWriteWins(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()

	save(t, repo, "u1", "device-token")
	save(t, repo, "u2", "device-token")

	stored, err := repo.FindByToken(ctx, "device-token")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "u2", stored.UserID)

	var count int64
	require.NoError(t, db.Model(&notificationdomain.FCMToken{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDelete_OnlyOwner(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()
	save(t, repo, "u1", "tok")

	n, err := repo.Delete(ctx, "u2", "tok")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, "u1", "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, "u1", "tok")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLatestByUserIDs(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	save(t, repo, "u1", "u1-old")
	save(t, repo, "u1", "u1-new")
	save(t, repo, "u2", "u2-only")
	save(t, repo, "u3", "u3-unrequested")
	touch(t, db, "u1-old", base)
	touch(t, db, "u1-new", base.Add(time.Minute))
	touch(t, db, "u2-only", base)

	tokens, err := repo.LatestByUserIDs(ctx, []string{"u1", "u2", "u4"})
	require.NoError(t, err)

	got := map[string]string{}
	for _, tk := range tokens {
		got[tk.UserID] = tk.Token
	}
	assert.Equal(t, map[string]string{"u1": "u1-new", "u2": "u2-only"}, got)

	none, err := repo.LatestByUserIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteTokensAndStale(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()

	save(t, repo, "u1", "a")
	save(t, repo, "u1", "b")
	save(t, repo, "u2", "c")
	touch(t, db, "c", time.Now().AddDate(0, 0, -90))

	n, err := repo.DeleteStale(ctx, time.Now().AddDate(0, 0, -60))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteTokens(ctx, []string{"a", "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := repo.FindByToken(ctx, "b")
	require.NoError(t, err)
	assert.NotNil(t, left)

	n, err = repo.DeleteTokens(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
