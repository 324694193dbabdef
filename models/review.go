package models

import (
	"time"
)

// Review is immutable once created; there are no update or per-review delete
// operations, only the cascades that remove a parent Room or Account.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	AccountID uint      `gorm:"index;not null" json:"account_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`

	Room    Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
