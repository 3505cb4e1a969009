package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventCategory classifies a user-authored event
type EventCategory string

const (
	CategoryPersonal  EventCategory = "personal"
	CategoryFamily    EventCategory = "family"
	CategoryCommunity EventCategory = "community"
)

// CustomEvent is a user-authored calendar event, as opposed to the predefined
// festival catalog which ships with the service.
type CustomEvent struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string        `gorm:"size:128;not null;index" json:"user_id"`
	Title           string        `gorm:"size:200;not null" json:"title"`
	Date            string        `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time            string        `gorm:"size:8" json:"time,omitempty"`       // HH:MM, optional
	Description     string        `gorm:"type:text" json:"description,omitempty"`
	Category        EventCategory `gorm:"size:20;not null;default:'personal'" json:"category"`
	ReminderEnabled bool          `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderTime    string        `gorm:"size:20;not null;default:'1_day_before'" json:"reminder_time"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updated_at"`
}

// BeforeCreate assigns the event ID and timestamps
func (e *CustomEvent) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Category == "" {
		e.Category = CategoryPersonal
	}
	if e.ReminderTime == "" {
		e.ReminderTime = "1_day_before"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	return nil
}

// BeforeSave keeps the update timestamp current
func (e *CustomEvent) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

// TableName specifies the table name for the CustomEvent model
func (CustomEvent) TableName() string {
	return "custom_event"
}

// CreateEventRequest is the payload for creating a custom event
type CreateEventRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time"`
	Description     string `json:"description"`
	Category        string `json:"category" binding:"omitempty,oneof=personal family community"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderTime    string `json:"reminder_time"`
}

// UpdateEventRequest is the payload for updating a custom event. Pointer
// fields distinguish "leave unchanged" from an explicit new value.
type UpdateEventRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=200"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Description     *string `json:"description"`
	Category        *string `json:"category" binding:"omitempty,oneof=personal family community"`
	ReminderEnabled *bool   `json:"reminder_enabled"`
	ReminderTime    *string `json:"reminder_time"`
}
