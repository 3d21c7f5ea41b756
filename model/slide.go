package model

import "time"

// Slide is a home-page carousel entry, ordered by Order ascending.
type Slide struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Order       int       `json:"order"`
	UserID      *uint     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
