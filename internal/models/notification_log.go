package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationLog records one delivery attempt made by the reminder sweep.
// Purely an audit trail; nothing reads it back in the request path.
type NotificationLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ReminderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"reminder_id"`
	UserID     string         `gorm:"size:128;not null;index" json:"user_id"`
	EventID    string         `gorm:"size:64;not null" json:"event_id"`
	Tokens     int            `gorm:"not null" json:"tokens"`
	Delivered  int            `gorm:"not null" json:"delivered"`
	FirstError string         `gorm:"type:text" json:"first_error,omitempty"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
	SentAt     time.Time      `gorm:"not null;index" json:"sent_at"`
}

// BeforeCreate assigns the log ID and timestamp
func (n *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.SentAt.IsZero() {
		n.SentAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for the NotificationLog model
func (NotificationLog) TableName() string {
	return "notification_log"
}
