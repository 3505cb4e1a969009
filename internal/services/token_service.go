package services

import (
	"fmt"
	"time"

	"utsav/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenService owns the push_token table: the set of FCM endpoints each user's
// devices have registered.
type TokenService struct {
	db *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

// Upsert registers a token for a user. A re-registration of the same
// (user, token) pair bumps updated_at instead of failing on the unique index.
func (s *TokenService) Upsert(userID, token, platform string) error {
	if platform == "" {
		platform = "web"
	}
	row := models.PushToken{
		UserID:   userID,
		Token:    token,
		Platform: platform,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"updated_at": time.Now(),
			"platform":   platform,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save push token: %w", err)
	}
	return nil
}

// ListForUser returns every token registered for a user.
func (s *TokenService) ListForUser(userID string) ([]models.PushToken, error) {
	var tokens []models.PushToken
	if err := s.db.Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch push tokens: %w", err)
	}
	return tokens, nil
}

// Remove deletes a specific token for a user.
func (s *TokenService) Remove(userID, token string) error {
	err := s.db.Where("user_id = ? AND token = ?", userID, token).Delete(&models.PushToken{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove push token: %w", err)
	}
	return nil
}

// RemoveByPlatform deletes every token a user registered for a platform.
// Sign-out uses this since the client no longer has the token value.
func (s *TokenService) RemoveByPlatform(userID, platform string) error {
	err := s.db.Where("user_id = ? AND platform = ?", userID, platform).Delete(&models.PushToken{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove push tokens: %w", err)
	}
	return nil
}

// RemoveInvalid deletes a token the push provider reported as permanently
// unregistered, whichever user it belongs to.
func (s *TokenService) RemoveInvalid(token string) error {
	if err := s.db.Where("token = ?", token).Delete(&models.PushToken{}).Error; err != nil {
		return fmt.Errorf("failed to remove invalid token: %w", err)
	}
	return nil
}

// DeduplicateKeepLatest keeps only the most recently created token per user
// and deletes the rest. Returns how many rows were deleted and how many kept.
func (s *TokenService) DeduplicateKeepLatest() (deleted int, kept int, err error) {
	var tokens []models.PushToken
	if err := s.db.Order("created_at DESC").Find(&tokens).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to fetch push tokens: %w", err)
	}

	toDelete := duplicateTokenIDs(tokens)
	kept = len(tokens) - len(toDelete)

	if len(toDelete) > 0 {
		if err := s.db.Delete(&models.PushToken{}, "id IN ?", toDelete).Error; err != nil {
			return 0, kept, fmt.Errorf("failed to delete duplicate tokens: %w", err)
		}
	}
	return len(toDelete), kept, nil
}

// duplicateTokenIDs expects tokens sorted newest-first and returns the IDs of
// every row after the first per user.
func duplicateTokenIDs(tokens []models.PushToken) []uuid.UUID {
	seen := make(map[string]bool, len(tokens))
	var duplicates []uuid.UUID
	for _, t := range tokens {
		if seen[t.UserID] {
			duplicates = append(duplicates, t.ID)
			continue
		}
		seen[t.UserID] = true
	}
	return duplicates
}
