package models

import "time"

// User represents an application user. Users are created through the
// admin-only user management routes; authentication is by email alone.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"size:64;not null" json:"firstName"`
	LastName  string    `gorm:"size:64" json:"lastName"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
