package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder represents a user's opt-in to be notified before a calendar event.
// SendAt is computed once at creation from the event date and the chosen
// reminder offset; it is never written again. Toggling a reminder off deletes
// the row, so re-enabling recomputes SendAt from scratch.
type Reminder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:128;not null;index;uniqueIndex:idx_reminder_user_event" json:"user_id"`
	EventID   string    `gorm:"size:64;not null;uniqueIndex:idx_reminder_user_event" json:"event_id"`
	EventDate string    `gorm:"size:10;not null;index" json:"event_date"` // YYYY-MM-DD
	Enabled   bool      `gorm:"not null;default:true" json:"reminder_enabled"`
	Sent      bool      `gorm:"not null;default:false;index" json:"reminder_sent"`
	SendAt    time.Time `gorm:"index" json:"reminder_send_at"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns the reminder ID and creation time
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for the Reminder model
func (Reminder) TableName() string {
	return "event_reminder"
}

// ToggleReminderRequest is the payload for enabling/disabling a reminder on an event
type ToggleReminderRequest struct {
	EventID      string `json:"event_id" binding:"required"`
	EventDate    string `json:"event_date" binding:"required"`
	ReminderTime string `json:"reminder_time"` // offset policy, defaults to 1_day_before
}
