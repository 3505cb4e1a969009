package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"utsav/internal/database"
	"utsav/internal/models"
	"utsav/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFestivals returns the predefined 2026 catalog, optionally filtered by
// ?month=1-12 or ?date=YYYY-MM-DD
func ListFestivals(c *gin.Context) {
	catalog := services.NewCatalogService(database.GetDB())

	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, catalog.FestivalsForDate(date))
		return
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return
		}
		c.JSON(http.StatusOK, catalog.FestivalsForMonth(month))
		return
	}
	c.JSON(http.StatusOK, catalog.Festivals())
}

// GetFestival returns one predefined festival by ID
func GetFestival(c *gin.Context) {
	festival := services.NewCatalogService(database.GetDB()).FestivalByID(c.Param("id"))
	if festival == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Festival not found"})
		return
	}
	c.JSON(http.StatusOK, festival)
}

// CreateEvent creates a custom event; with reminder_enabled it also schedules
// the matching reminder
func CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if _, err := services.ParseEventDate(request.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	db := database.GetDB()
	event := models.CustomEvent{
		UserID:          userID,
		Title:           request.Title,
		Date:            request.Date,
		Time:            request.Time,
		Description:     request.Description,
		Category:        models.EventCategory(request.Category),
		ReminderEnabled: request.ReminderEnabled,
		ReminderTime:    request.ReminderTime,
	}
	if err := db.Create(&event).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create event", err)
		return
	}

	if event.ReminderEnabled {
		offset := services.ReminderOffset(event.ReminderTime)
		_, err := services.NewReminderService(db).Create(userID, event.ID.String(), event.Date, offset)
		if err != nil && !errors.Is(err, services.ErrOverdueReminder) {
			handleError(c, http.StatusInternalServerError, "Event created but reminder scheduling failed", err)
			return
		}
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents returns the user's custom events; supports ?date= and ?limit=
// (upcoming feed) filters
func ListEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	db := database.GetDB()
	query := db.Where("user_id = ?", userID).Order("date ASC, time ASC")

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		query = query.Limit(limit)
	}

	var events []models.CustomEvent
	if err := query.Find(&events).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent returns one of the user's custom events
func GetEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	event, ok := findUserEvent(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent applies a partial update to a custom event and keeps the
// reminder in sync: enabling (or changing the date/offset of an enabled
// reminder) reschedules it, disabling removes it
func UpdateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	event, ok := findUserEvent(c, userID)
	if !ok {
		return
	}

	var request models.UpdateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if request.Title != nil {
		event.Title = *request.Title
	}
	if request.Date != nil {
		if _, err := services.ParseEventDate(*request.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		event.Date = *request.Date
	}
	if request.Time != nil {
		event.Time = *request.Time
	}
	if request.Description != nil {
		event.Description = *request.Description
	}
	if request.Category != nil {
		event.Category = models.EventCategory(*request.Category)
	}
	if request.ReminderEnabled != nil {
		event.ReminderEnabled = *request.ReminderEnabled
	}
	if request.ReminderTime != nil {
		event.ReminderTime = *request.ReminderTime
	}

	db := database.GetDB()
	if err := db.Save(event).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update event", err)
		return
	}

	// Keep the reminder record aligned with the event settings
	reminders := services.NewReminderService(db)
	if err := reminders.DeleteForEvent(userID, event.ID.String()); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to reschedule reminder", err)
		return
	}
	if event.ReminderEnabled {
		offset := services.ReminderOffset(event.ReminderTime)
		_, err := reminders.Create(userID, event.ID.String(), event.Date, offset)
		if err != nil && !errors.Is(err, services.ErrOverdueReminder) {
			handleError(c, http.StatusInternalServerError, "Failed to reschedule reminder", err)
			return
		}
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes a custom event along with its reminder
func DeleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	event, ok := findUserEvent(c, userID)
	if !ok {
		return
	}

	db := database.GetDB()
	if err := db.Delete(event).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete event", err)
		return
	}
	if err := services.NewReminderService(db).DeleteForEvent(userID, event.ID.String()); err != nil {
		handleError(c, http.StatusInternalServerError, "Event deleted but reminder cleanup failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// findUserEvent loads the event in the :id path parameter and verifies the
// caller owns it
func findUserEvent(c *gin.Context, userID string) (*models.CustomEvent, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, false
	}

	var event models.CustomEvent
	err = database.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch event", err)
		return nil, false
	}
	return &event, true
}
