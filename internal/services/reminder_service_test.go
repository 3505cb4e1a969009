package services

import (
	"testing"
	"time"

	"utsav/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_CreateComputesSendAt(t *testing.T) {
	db := setupDB(t)
	svc := NewReminderService(db)

	reminder, err := svc.Create("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)

	assert.True(t, reminder.Enabled)
	assert.False(t, reminder.Sent)
	assert.Equal(t, time.Date(2026, 10, 19, 18, 0, 0, 0, time.Local), reminder.SendAt)
}

func TestReminderService_CreateSkipOverdue(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2026, 10, 19, 19, 0, 0, 0, time.Local) // past the 18:00 send time
	svc := newTestReminderService(db, now, true)

	_, err := svc.Create("user-1", "47", "2026-10-20", OffsetOneDay)
	assert.ErrorIs(t, err, ErrOverdueReminder)

	// Default mode creates the overdue reminder anyway
	svc = newTestReminderService(db, now, false)
	reminder, err := svc.Create("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	assert.True(t, reminder.SendAt.Before(now))
}

func TestReminderService_ToggleIsIdempotentInPairs(t *testing.T) {
	db := setupDB(t)
	svc := NewReminderService(db)

	// No reminder -> toggle creates one
	created, err := svc.Toggle("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.Enabled)

	// Enabled reminder -> toggle deletes it
	gone, err := svc.Toggle("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	assert.Nil(t, gone)

	remaining, err := svc.Get("user-1", "47")
	require.NoError(t, err)
	assert.Nil(t, remaining, "pair of toggles must return to the original state")
}

func TestReminderService_ToggleReenablesDisabledRow(t *testing.T) {
	db := setupDB(t)
	svc := NewReminderService(db)

	// A disabled row only exists via migration or manual edit
	created, err := svc.Create("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Reminder{}).Where("id = ?", created.ID).Update("enabled", false).Error)

	toggled, err := svc.Toggle("user-1", "47", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.Equal(t, created.ID, toggled.ID, "disabled row is re-enabled, not recreated")

	var row models.Reminder
	require.NoError(t, db.First(&row, "id = ?", created.ID).Error)
	assert.True(t, row.Enabled)
}

func TestReminderService_ListDue(t *testing.T) {
	db := setupDB(t)
	svc := NewReminderService(db)

	due, err := svc.Create("user-1", "1", "2026-01-06", OffsetSameDay) // sends 06:00
	require.NoError(t, err)
	notYet, err := svc.Create("user-1", "2", "2026-01-13", OffsetSameDay)
	require.NoError(t, err)

	alreadySent, err := svc.Create("user-2", "1", "2026-01-06", OffsetSameDay)
	require.NoError(t, err)
	require.NoError(t, svc.MarkSent(alreadySent.ID))

	disabled, err := svc.Create("user-3", "1", "2026-01-06", OffsetSameDay)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Reminder{}).Where("id = ?", disabled.ID).Update("enabled", false).Error)

	t.Run("one second past the send time", func(t *testing.T) {
		now := time.Date(2026, 1, 6, 6, 0, 1, 0, time.Local)
		records, err := svc.ListDue(now)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, due.ID, records[0].ID)
	})

	t.Run("one second before the send time", func(t *testing.T) {
		now := time.Date(2026, 1, 6, 5, 59, 59, 0, time.Local)
		records, err := svc.ListDue(now)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("sent and disabled records never appear", func(t *testing.T) {
		now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
		records, err := svc.ListDue(now)
		require.NoError(t, err)
		for _, r := range records {
			assert.False(t, r.Sent)
			assert.True(t, r.Enabled)
		}
		assert.Len(t, records, 2) // due + notYet, both elapsed by 2027
		_ = notYet
	})
}

func TestReminderService_ListUpcoming(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	svc := newTestReminderService(db, now, false)

	past, err := svc.Create("user-1", "33", "2026-08-09", OffsetOneDay)
	require.NoError(t, err)
	later, err := svc.Create("user-1", "35", "2026-08-22", OffsetOneDay)
	require.NoError(t, err)
	soon, err := svc.Create("user-1", "34", "2026-08-17", OffsetOneDay)
	require.NoError(t, err)
	_, err = svc.Create("user-2", "35", "2026-08-22", OffsetOneDay)
	require.NoError(t, err)

	upcoming, err := svc.ListUpcoming("user-1", 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 2, "past events are excluded")
	assert.Equal(t, soon.ID, upcoming[0].ID, "ascending by event date")
	assert.Equal(t, later.ID, upcoming[1].ID)
	_ = past

	capped, err := svc.ListUpcoming("user-1", 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)
}

func TestReminderService_DeleteForEvent(t *testing.T) {
	db := setupDB(t)
	svc := NewReminderService(db)

	_, err := svc.Create("user-1", "ev-1", "2026-10-20", OffsetOneDay)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteForEvent("user-1", "ev-1"))

	reminder, err := svc.Get("user-1", "ev-1")
	require.NoError(t, err)
	assert.Nil(t, reminder)

	// Deleting a nonexistent reminder is not an error
	assert.NoError(t, svc.DeleteForEvent("user-1", "ev-1"))
}
