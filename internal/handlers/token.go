package handlers

import (
	"net/http"

	"utsav/internal/database"
	"utsav/internal/models"
	"utsav/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterToken saves a device's FCM token for the signed-in user. Repeated
// registrations of the same token just refresh its timestamp.
func RegisterToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.RegisterTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := services.NewTokenService(database.GetDB()).Upsert(userID, request.Token, request.Platform); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to save push token", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

// UnregisterToken removes a specific token, or every token for a platform
// when the client no longer knows the token value (sign-out)
func UnregisterToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.UnregisterTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if request.Token == "" && request.Platform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token or platform is required"})
		return
	}

	tokens := services.NewTokenService(database.GetDB())
	var err error
	if request.Token != "" {
		err = tokens.Remove(userID, request.Token)
	} else {
		err = tokens.RemoveByPlatform(userID, request.Platform)
	}
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to remove push token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
