package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"utsav/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderService owns the event_reminder table. Disabling a reminder deletes
// the row outright, so "a row exists and is enabled" is the normal state and a
// disabled row only ever appears from a migration or manual edit.
type ReminderService struct {
	db *gorm.DB

	// skipOverdue mirrors the client-side "don't schedule in the past" guard
	// on the server path. Off by default: an overdue reminder is created
	// anyway and swept immediately.
	skipOverdue bool
	now         func() time.Time
}

// ErrOverdueReminder is returned when skip-overdue mode rejects a reminder
// whose computed send time has already passed.
var ErrOverdueReminder = errors.New("reminder send time is in the past")

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		db:          db,
		skipOverdue: os.Getenv("REMINDER_SKIP_OVERDUE") == "true",
		now:         time.Now,
	}
}

// Get returns the user's reminder for an event, or nil if none exists.
func (s *ReminderService) Get(userID, eventID string) (*models.Reminder, error) {
	var reminder models.Reminder
	err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	return &reminder, nil
}

// Create inserts an enabled, unsent reminder with its send time computed from
// the event date and offset policy. In skip-overdue mode a send time that is
// not in the future returns ErrOverdueReminder instead.
func (s *ReminderService) Create(userID, eventID, eventDate string, offset ReminderOffset) (*models.Reminder, error) {
	date, err := ParseEventDate(eventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %q: %w", eventDate, err)
	}

	sendAt := CalculateSendAt(date, offset)
	if s.skipOverdue && !sendAt.After(s.now()) {
		return nil, ErrOverdueReminder
	}

	reminder := models.Reminder{
		UserID:    userID,
		EventID:   eventID,
		EventDate: eventDate,
		Enabled:   true,
		Sent:      false,
		SendAt:    sendAt,
	}
	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return &reminder, nil
}

// SetEnabled re-enables a reminder row. Only the enable direction exists;
// disabling goes through Delete.
func (s *ReminderService) SetEnabled(id uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.First(&reminder, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	if err := s.db.Model(&reminder).Update("enabled", true).Error; err != nil {
		return nil, fmt.Errorf("failed to enable reminder: %w", err)
	}
	return &reminder, nil
}

// Delete removes a reminder row; any scheduled notification for it becomes moot.
func (s *ReminderService) Delete(id uuid.UUID) error {
	if err := s.db.Delete(&models.Reminder{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// DeleteForEvent removes the user's reminder for an event, if one exists.
// Used when a custom event is deleted or its reminder is switched off.
func (s *ReminderService) DeleteForEvent(userID, eventID string) error {
	if err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&models.Reminder{}).Error; err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// Toggle flips the reminder state for one event. No reminder: create one and
// return it. Enabled reminder: delete it and return nil. A disabled row
// (possible only via migration) is re-enabled in place.
func (s *ReminderService) Toggle(userID, eventID, eventDate string, offset ReminderOffset) (*models.Reminder, error) {
	existing, err := s.Get(userID, eventID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return s.Create(userID, eventID, eventDate, offset)
	}
	if existing.Enabled {
		if err := s.Delete(existing.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return s.SetEnabled(existing.ID)
}

// ListDue returns every enabled, unsent reminder whose send time has elapsed.
func (s *ReminderService) ListDue(now time.Time) ([]models.Reminder, error) {
	var due []models.Reminder
	err := s.db.
		Where("enabled = ? AND sent = ? AND send_at <= ?", true, false, now).
		Find(&due).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due reminders: %w", err)
	}
	return due, nil
}

// MarkSent flips the sent flag. Called once per reminder per sweep, whatever
// the delivery outcome.
func (s *ReminderService) MarkSent(id uuid.UUID) error {
	err := s.db.Model(&models.Reminder{}).Where("id = ?", id).Update("sent", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}

// ListUpcoming returns the user's enabled reminders for today and later,
// soonest first, capped at limit.
func (s *ReminderService) ListUpcoming(userID string, limit int) ([]models.Reminder, error) {
	today := s.now().Format("2006-01-02")
	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ? AND enabled = ? AND event_date >= ?", userID, true, today).
		Order("event_date ASC").
		Limit(limit).
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming reminders: %w", err)
	}
	return reminders, nil
}

// ListForUser returns all of the user's reminders ordered by event date.
func (s *ReminderService) ListForUser(userID string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ?", userID).
		Order("event_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}
	return reminders, nil
}
