package services

import (
	"testing"
	"time"

	"utsav/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_UpsertRefreshesOnConflict(t *testing.T) {
	db := setupDB(t)
	svc := NewTokenService(db)

	require.NoError(t, svc.Upsert("user-1", "tok-a", "web"))

	var first models.PushToken
	require.NoError(t, db.First(&first, "user_id = ? AND token = ?", "user-1", "tok-a").Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.Upsert("user-1", "tok-a", "web"))

	var rows []models.PushToken
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&rows).Error)
	require.Len(t, rows, 1, "re-registration must not duplicate the row")
	assert.True(t, rows[0].UpdatedAt.After(first.UpdatedAt), "conflict bumps updated_at")
}

func TestTokenService_UpsertDefaultsPlatform(t *testing.T) {
	db := setupDB(t)
	svc := NewTokenService(db)

	require.NoError(t, svc.Upsert("user-1", "tok-a", ""))

	var row models.PushToken
	require.NoError(t, db.First(&row, "token = ?", "tok-a").Error)
	assert.Equal(t, "web", row.Platform)
}

func TestTokenService_RemoveInvalid(t *testing.T) {
	db := setupDB(t)
	svc := NewTokenService(db)

	require.NoError(t, svc.Upsert("user-1", "tok-dead", "web"))
	require.NoError(t, svc.Upsert("user-1", "tok-live", "web"))

	require.NoError(t, svc.RemoveInvalid("tok-dead"))

	tokens, err := svc.ListForUser("user-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "tok-live", tokens[0].Token)
}

func TestTokenService_RemoveByPlatform(t *testing.T) {
	db := setupDB(t)
	svc := NewTokenService(db)

	require.NoError(t, svc.Upsert("user-1", "tok-web-1", "web"))
	require.NoError(t, svc.Upsert("user-1", "tok-web-2", "web"))
	require.NoError(t, svc.Upsert("user-1", "tok-android", "android"))

	require.NoError(t, svc.RemoveByPlatform("user-1", "web"))

	tokens, err := svc.ListForUser("user-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "tok-android", tokens[0].Token)
}

func TestTokenService_DeduplicateKeepLatest(t *testing.T) {
	db := setupDB(t)
	svc := NewTokenService(db)

	base := time.Now().Add(-time.Hour)
	insert := func(userID, token string, createdAt time.Time) {
		row := models.PushToken{UserID: userID, Token: token, Platform: "web", CreatedAt: createdAt, UpdatedAt: createdAt}
		require.NoError(t, db.Create(&row).Error)
	}

	// User A: t1 at T, t2 at T+10s -> t1 deleted, t2 kept
	insert("user-a", "t1", base)
	insert("user-a", "t2", base.Add(10*time.Second))
	// User B: single token, untouched
	insert("user-b", "t3", base)

	deleted, kept, err := svc.DeduplicateKeepLatest()
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 2, kept)

	tokensA, err := svc.ListForUser("user-a")
	require.NoError(t, err)
	require.Len(t, tokensA, 1)
	assert.Equal(t, "t2", tokensA[0].Token, "the newest token survives")

	tokensB, err := svc.ListForUser("user-b")
	require.NoError(t, err)
	assert.Len(t, tokensB, 1)
}

func TestTokenService_DeduplicateKeepLatestEmpty(t *testing.T) {
	db := setupDB(t)
	deleted, kept, err := NewTokenService(db).DeduplicateKeepLatest()
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Zero(t, kept)
}

func TestDuplicateTokenIDs(t *testing.T) {
	newest := models.PushToken{UserID: "u"}
	newest.ID = mustUUID(t)
	older := models.PushToken{UserID: "u"}
	older.ID = mustUUID(t)
	other := models.PushToken{UserID: "v"}
	other.ID = mustUUID(t)

	// Input is sorted newest first
	dupes := duplicateTokenIDs([]models.PushToken{newest, older, other})
	require.Len(t, dupes, 1)
	assert.Equal(t, older.ID, dupes[0])
}
