package model

import "time"

/*

Activity is a workshop or program the organization runs.

Image: key of the uploaded image in the attachment store, not the binary
UserID, CategoryID: optional links, validated by lookup on write

*/

type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	UserID      *uint     `json:"user_id"`
	CategoryID  *uint     `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
