package models

import (
	"time"
)

// Booking status is stored as the localized display label, exactly as the
// admin pages render it. BookingStatusLabels maps the request tokens to those
// labels; anything outside the map is rejected by the service layer.
const (
	BookingStatusPending   = "待处理"
	BookingStatusConfirmed = "已确认"
	BookingStatusCancelled = "已取消"
)

var BookingStatusLabels = map[string]string{
	"pending":   BookingStatusPending,
	"confirmed": BookingStatusConfirmed,
	"cancelled": BookingStatusCancelled,
}

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	AccountID uint      `gorm:"index;not null" json:"account_id"`
	CheckIn   time.Time `gorm:"not null" json:"check_in"`
	CheckOut  time.Time `gorm:"not null" json:"check_out"`

	// TotalPrice is frozen at creation time (room price at that moment times
	// nights). Edits never recompute it.
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	Status     string    `gorm:"size:20;default:待处理" json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Room    Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// Nights returns the whole-day difference between check-out and check-in.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
