package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"utsav/internal/database"
	"utsav/internal/models"
	"utsav/internal/services"

	"github.com/gin-gonic/gin"
)

// ToggleReminder flips the reminder state for one event. Responds with the
// reminder and enabled=true after a create/re-enable, or enabled=false after
// a delete, so the client can update its bell icon from one field.
func ToggleReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.ToggleReminderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id and event_date are required"})
		return
	}

	offset := services.ReminderOffset(request.ReminderTime)
	if offset == "" {
		offset = services.DefaultReminderOffset
	}

	reminder, err := services.NewReminderService(database.GetDB()).Toggle(userID, request.EventID, request.EventDate, offset)
	if err != nil {
		if errors.Is(err, services.ErrOverdueReminder) {
			c.JSON(http.StatusConflict, gin.H{"error": "Reminder time has already passed", "enabled": false})
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to toggle reminder", err)
		return
	}

	if reminder == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true, "reminder": reminder})
}

// GetReminder returns the user's reminder for one event, if any
func GetReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminder, err := services.NewReminderService(database.GetDB()).Get(userID, c.Param("eventId"))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch reminder", err)
		return
	}
	if reminder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No reminder for this event"})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// ListReminders returns all of the user's reminders
func ListReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminders, err := services.NewReminderService(database.GetDB()).ListForUser(userID)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch reminders", err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// ListUpcomingReminders returns the user's next enabled reminders, soonest
// first; ?limit= caps the count (default 10)
func ListUpcomingReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	reminders, err := services.NewReminderService(database.GetDB()).ListUpcoming(userID, limit)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch upcoming reminders", err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}
