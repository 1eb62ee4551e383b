package services

import (
	"errors"
	"fmt"
	"time"

	"newschat-backend/models"

	"gorm.io/gorm"
)

// SavedService manages per-user article bookmarks.
type SavedService struct {
	db *gorm.DB
}

// NewSavedService creates a new saved-articles service instance
func NewSavedService(db *gorm.DB) *SavedService {
	return &SavedService{db: db}
}

// Save bookmarks an article for a user. Saving the same URL twice returns
// the existing bookmark.
func (s *SavedService) Save(userID string, article models.SavedArticle) (*models.SavedArticle, error) {
	var existing models.SavedArticle
	err := s.db.Where("user_id = ? AND url = ?", userID, article.URL).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up saved article: %w", err)
	}

	article.ID = 0
	article.UserID = userID
	article.SavedAt = time.Now()
	if err := s.db.Create(&article).Error; err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}
	return &article, nil
}

// List returns a user's bookmarks, most recently saved first.
func (s *SavedService) List(userID string) ([]models.SavedArticle, error) {
	var articles []models.SavedArticle
	err := s.db.Where("user_id = ?", userID).Order("saved_at DESC").Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved articles: %w", err)
	}
	return articles, nil
}

// Delete removes one of a user's bookmarks.
func (s *SavedService) Delete(userID string, id uint) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.SavedArticle{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedNotFound
	}
	return nil
}
