package services

import (
	"fmt"
	"strings"

	"utsav/internal/models"

	"gorm.io/gorm"
)

// CatalogService resolves event IDs against the predefined festival table and
// the user's custom events. The sweeper uses it to build notification text;
// the calendar endpoints read the festival side directly.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Festivals returns the full predefined 2026 catalog.
func (s *CatalogService) Festivals() []models.FestivalEvent {
	return festivals2026
}

// FestivalsForMonth returns predefined events in a month (1-12) of 2026.
func (s *CatalogService) FestivalsForMonth(month int) []models.FestivalEvent {
	prefix := fmt.Sprintf("2026-%02d", month)
	var out []models.FestivalEvent
	for _, f := range festivals2026 {
		if strings.HasPrefix(f.Date, prefix) {
			out = append(out, f)
		}
	}
	return out
}

// FestivalsForDate returns predefined events on a YYYY-MM-DD date.
func (s *CatalogService) FestivalsForDate(date string) []models.FestivalEvent {
	var out []models.FestivalEvent
	for _, f := range festivals2026 {
		if f.Date == date {
			out = append(out, f)
		}
	}
	return out
}

// FestivalByID returns a predefined event by ID, or nil.
func (s *CatalogService) FestivalByID(id string) *models.FestivalEvent {
	for i := range festivals2026 {
		if festivals2026[i].ID == id {
			return &festivals2026[i]
		}
	}
	return nil
}

// Lookup resolves an event ID to a display title for notification text.
// Predefined festivals are checked first, then the user's custom events. An
// unknown ID falls back to the raw event ID so a reminder can still go out.
func (s *CatalogService) Lookup(userID, eventID string) string {
	if f := s.FestivalByID(eventID); f != nil {
		return f.Title
	}

	var event models.CustomEvent
	if err := s.db.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		return eventID
	}
	return event.Title
}
