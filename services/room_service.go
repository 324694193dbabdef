package services

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"hotel-master/models"
)

// Upload is the presentation layer's handle to an uploaded image: the original
// filename plus its byte stream.
type Upload struct {
	Filename string
	Data     io.Reader
}

type RoomService struct {
	DB     *gorm.DB
	Images *ImageService
}

func NewRoomService(db *gorm.DB, images *ImageService) *RoomService {
	return &RoomService{DB: db, Images: images}
}

type RoomInput struct {
	Name        string
	Price       string
	Type        string
	Capacity    string
	Description string
}

func parseRoomNumbers(in RoomInput) (float64, int, error) {
	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil || price <= 0 {
		return 0, 0, fmt.Errorf("price must be a positive number, got %q", in.Price)
	}
	capacity, err := strconv.Atoi(in.Capacity)
	if err != nil || capacity <= 0 {
		return 0, 0, fmt.Errorf("capacity must be a positive integer, got %q", in.Capacity)
	}
	return price, capacity, nil
}

// Create adds a room. An image outside the allowed extensions (or no image at
// all) falls back to the placeholder with a warning and never blocks the
// creation. The image file is written before the row; if the insert fails the
// orphaned file is removed best-effort so disk and database stay in step.
func (s *RoomService) Create(in RoomInput, image *Upload) (*models.Room, error) {
	price, capacity, err := parseRoomNumbers(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoomCreationFailed, err)
	}

	filename := models.DefaultRoomImage
	if image != nil && image.Filename != "" {
		if AllowedFile(image.Filename) {
			stored, err := s.Images.SaveUpload(image.Filename, image.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRoomCreationFailed, err)
			}
			filename = stored
		} else {
			log.Warn().Str("filename", image.Filename).
				Msg("rejected room image upload, only png/jpg/jpeg/gif allowed; using placeholder")
		}
	}

	room := &models.Room{
		Name:        in.Name,
		Price:       price,
		Type:        in.Type,
		Capacity:    capacity,
		Description: in.Description,
		Image:       filename,
		Status:      models.RoomStatusAvailable,
	}
	if err := s.DB.Create(room).Error; err != nil {
		if filename != models.DefaultRoomImage {
			if rmErr := s.Images.Remove(filename); rmErr != nil {
				log.Warn().Err(rmErr).Str("image", filename).Msg("could not remove orphaned room image")
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrRoomCreationFailed, err)
	}
	return room, nil
}

// Update edits all mutable room fields. A supplied replacement image removes
// the previous file first (a file already gone from disk is fine) and is
// stored under a timestamp-derived name. Unlike Create, the replacement's
// extension is not validated; the add and edit paths differ upstream and the
// asymmetry is kept on purpose.
func (s *RoomService) Update(id uint, in RoomInput, status string, image *Upload) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	price, capacity, err := parseRoomNumbers(in)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"price":       price,
		"type":        in.Type,
		"capacity":    capacity,
		"description": in.Description,
	}
	if status != "" {
		updates["status"] = status
	}

	if image != nil && image.Filename != "" {
		if err := s.Images.Remove(room.Image); err != nil {
			return nil, fmt.Errorf("remove old room image: %w", err)
		}
		stored, err := s.Images.SaveReplacement(image.Filename, image.Data)
		if err != nil {
			return nil, fmt.Errorf("save room image: %w", err)
		}
		updates["image"] = stored
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete cascades bookings and reviews before the room row, all inside one
// transaction so a failure partway leaves nothing orphaned. The image file is
// removed only after the commit, and the placeholder is never deleted.
func (s *RoomService) Delete(id uint) error {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return notFoundOr(err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		return err
	}

	if room.Image != models.DefaultRoomImage {
		if rmErr := s.Images.Remove(room.Image); rmErr != nil {
			log.Warn().Err(rmErr).Str("image", room.Image).Msg("could not remove image of deleted room")
		}
	}
	return nil
}

// ListAvailable returns the rooms shown on the public index page.
func (s *RoomService) ListAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("status = ?", models.RoomStatusAvailable).Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &room, nil
}
