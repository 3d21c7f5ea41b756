package model

import "time"

// AccessToken is an opaque bearer token issued at login. The token value
// itself is the credential; there is no expiry, a logout would delete
// the row.
type AccessToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex" json:"-"`
	UserID    uint      `json:"user_id"`
	User      User      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
