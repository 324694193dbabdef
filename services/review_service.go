package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-master/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create attaches a review to a room. Reviews are immutable afterwards; the
// only way one disappears is through a room or account cascade.
func (s *ReviewService) Create(accountID uint, roomID uint, content string, rating int) (*models.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("review content must not be empty")
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	review := &models.Review{
		RoomID:    roomID,
		AccountID: accountID,
		Content:   content,
		Rating:    rating,
	}
	if err := s.DB.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListByRoom returns a room's reviews newest-first with the authors preloaded
// for the room detail page.
func (s *ReviewService) ListByRoom(roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("Account").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
