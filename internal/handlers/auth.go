package handlers

import (
	"log"
	"net/http"

	"utsav/internal/auth"
	"utsav/internal/utils"

	"github.com/gin-gonic/gin"
)

// LoginRequest carries the Google ID token obtained by the PWA's sign-in flow
type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// Login verifies a Google ID token and issues a session JWT
func Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_token is required"})
		return
	}

	info, err := auth.VerifyGoogleIDToken(c.Request.Context(), request.IDToken)
	if err != nil {
		handleError(c, http.StatusUnauthorized, "Invalid Google ID token", err)
		return
	}

	token, err := auth.GenerateToken(info.Sub, info.Email)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	log.Printf("User %s logged in from %s", info.Sub, utils.GetRealClientIP(c))

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":      info.Sub,
			"email":   info.Email,
			"name":    info.Name,
			"picture": info.Picture,
		},
	})
}

// GetCurrentUser returns the identity baked into the session token
func GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    userID,
		"email": c.GetString("email"),
	})
}
