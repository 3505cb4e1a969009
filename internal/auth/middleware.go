package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// UserInfo is the identity extracted from a verified Google ID token
type UserInfo struct {
	Sub           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// VerifyGoogleIDToken verifies a Google ID token against the configured
// client ID using Google's official library and extracts the user identity.
func VerifyGoogleIDToken(ctx context.Context, rawToken string) (*UserInfo, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID environment variable not set")
	}

	payload, err := idtoken.Validate(ctx, rawToken, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	info := &UserInfo{Sub: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}
	return info, nil
}

// AuthMiddleware validates the bearer session token and stores the user ID in
// the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a bearer token"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// CronAuthMiddleware guards the scheduler trigger endpoints with a shared
// secret. The outside scheduler passes it in the X-Cron-Secret header.
func CronAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("CRON_SECRET")
		if secret == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Trigger endpoints not configured"})
			c.Abort()
			return
		}
		if c.GetHeader("X-Cron-Secret") != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid trigger secret"})
			c.Abort()
			return
		}
		c.Next()
	}
}
