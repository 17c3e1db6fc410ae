package models

import "time"

// Session is the server-side record behind one issued credential. The
// numeric ID is the only thing embedded in the signed token; expiration
// and validity live here and are re-checked on every request.
//
// A session is never deleted on expiry. It is deleted only as part of
// deleting its owning user.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	Expiration time.Time `gorm:"index;not null" json:"expiration"`
	Valid      bool      `gorm:"not null;default:true" json:"valid"`
	CreatedAt  time.Time `json:"-"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
