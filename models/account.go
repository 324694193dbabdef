package models

import (
	"time"
)

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// Account holds credentials as submitted. The upstream system compares
// passwords verbatim with no hashing; see the SECURITY note in README.md
// before changing this.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password  string    `gorm:"size:120;not null" json:"-"`
	Email     string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Role      string    `gorm:"size:20;default:guest" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	Bookings []Booking `gorm:"foreignKey:AccountID" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:AccountID" json:"reviews,omitempty"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
