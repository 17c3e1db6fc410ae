package models

import "time"

// Task belongs to exactly one board and one user. UserID is the creator
// and is what ownership checks look at; moving a task to another board
// does not change it.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BoardID   uint      `gorm:"index;not null" json:"boardId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Weight    int       `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Board Board `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User  User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
