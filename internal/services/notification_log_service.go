package services

import (
	"encoding/json"
	"log"

	"utsav/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationLogService writes the per-reminder audit trail of the sweep.
// Best-effort: a failed write is logged and never blocks delivery.
type NotificationLogService struct {
	db *gorm.DB
}

func NewNotificationLogService(db *gorm.DB) *NotificationLogService {
	return &NotificationLogService{db: db}
}

// Record stores one delivery attempt.
func (s *NotificationLogService) Record(reminder models.Reminder, tokens, delivered int, firstError string) {
	payload, err := json.Marshal(map[string]string{
		"eventId":   reminder.EventID,
		"eventDate": reminder.EventDate,
	})
	if err != nil {
		payload = nil
	}

	entry := models.NotificationLog{
		ReminderID: reminder.ID,
		UserID:     reminder.UserID,
		EventID:    reminder.EventID,
		Tokens:     tokens,
		Delivered:  delivered,
		FirstError: firstError,
		Payload:    datatypes.JSON(payload),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Error: failed to write notification log: %v", err)
	}
}
