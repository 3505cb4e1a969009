package services

import (
	"testing"
	"time"

	"utsav/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// setupDB opens an in-memory database with the production schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Reminder{},
		&models.PushToken{},
		&models.CustomEvent{},
		&models.NotificationLog{},
	))
	return db
}

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

// newTestReminderService builds a ReminderService with a fixed clock.
func newTestReminderService(db *gorm.DB, now time.Time, skipOverdue bool) *ReminderService {
	return &ReminderService{
		db:          db,
		skipOverdue: skipOverdue,
		now:         func() time.Time { return now },
	}
}
