package handlers

import (
	"log"
	"net/http"

	"utsav/internal/database"
	"utsav/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the scheduler trigger endpoints. The sweeper is built
// once at startup (its push dispatcher holds the cached FCM credential) and
// injected here.
type AdminHandler struct {
	sweeper *services.Sweeper
}

func NewAdminHandler(sweeper *services.Sweeper) *AdminHandler {
	return &AdminHandler{sweeper: sweeper}
}

// RunSweep triggers one due-reminder sweep and reports the counts
func (h *AdminHandler) RunSweep(c *gin.Context) {
	result, err := h.sweeper.RunSweep(c.Request.Context())
	if err != nil {
		if result.Processed == 0 {
			handleError(c, http.StatusInternalServerError, "Sweep failed", err)
			return
		}
		// Partial store failure: report the counts alongside the error so the
		// scheduler's logs show what did go out
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Sweep finished with errors",
			"processed": result.Processed,
			"sent":      result.Sent,
			"failed":    result.Failed,
		})
		return
	}
	if result.Processed == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No due reminders", "processed": 0})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RunTokenCleanup deletes duplicate push tokens, keeping the newest per user
func (h *AdminHandler) RunTokenCleanup(c *gin.Context) {
	deleted, kept, err := services.NewTokenService(database.GetDB()).DeduplicateKeepLatest()
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Token cleanup failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "kept": kept})
}
