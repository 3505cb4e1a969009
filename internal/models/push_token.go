package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushToken is an FCM delivery endpoint registered by one of a user's devices.
// A user may accumulate several rows from re-registrations; the cleanup job
// keeps only the newest one per user.
type PushToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:128;not null;index;uniqueIndex:idx_push_token_user_token" json:"user_id"`
	Token     string    `gorm:"size:512;not null;uniqueIndex:idx_push_token_user_token" json:"-"`
	Platform  string    `gorm:"size:20;not null;default:'web'" json:"platform"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate assigns the token ID and timestamps
func (t *PushToken) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	return nil
}

// TableName specifies the table name for the PushToken model
func (PushToken) TableName() string {
	return "push_token"
}

// RegisterTokenRequest is the payload for registering a device token
type RegisterTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}

// UnregisterTokenRequest removes either a specific token or every token the
// user registered for a platform (the sign-out path)
type UnregisterTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}
