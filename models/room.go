package models

import (
	"time"
)

const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"

	// DefaultRoomImage is the placeholder filename used when no image was
	// uploaded. It is never deleted from disk.
	DefaultRoomImage = "default.jpg"
)

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:80;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:120;default:default.jpg" json:"image"`
	Status      string    `gorm:"size:20;default:available" json:"status"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`

	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:RoomID" json:"reviews,omitempty"`
}
