package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-master/models"
)

const dateLayout = "2006-01-02"

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create books a room for an account over a date range. The total price uses
// the room's price at this moment and is frozen on the row; later room price
// edits never touch existing bookings. There is deliberately no overlap check
// against other bookings and no room status flip.
func (s *BookingService) Create(accountID uint, roomID uint, checkIn, checkOut string) (*models.Booking, error) {
	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	nights := int(co.Sub(ci).Hours() / 24)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	booking := &models.Booking{
		RoomID:     roomID,
		AccountID:  accountID,
		CheckIn:    ci,
		CheckOut:   co,
		TotalPrice: room.Price * float64(nights),
		Status:     models.BookingStatusPending,
	}
	if err := s.DB.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateStatus overwrites the booking status with the localized label for the
// given token. Unknown tokens fail with ErrInvalidStatus before the row is
// touched; there is no transition-order enforcement.
func (s *BookingService) UpdateStatus(id uint, token string) (*models.Booking, error) {
	label, ok := models.BookingStatusLabels[token]
	if !ok {
		return nil, ErrInvalidStatus
	}

	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if err := s.DB.Model(&booking).Update("status", label).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByAccount returns an account's bookings newest-first with their rooms
// preloaded, for the "my bookings" page.
func (s *BookingService) ListByAccount(accountID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListAll returns every booking newest-first for the admin view.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").Preload("Account").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &booking, nil
}
