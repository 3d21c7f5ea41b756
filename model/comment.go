package model

import "time"

// Comment is a reader comment on a news entry. Visible defaults to true
// so fresh comments show up without moderation.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	Image     string    `json:"image"`
	Visible   bool      `gorm:"default:true" json:"visible"`
	NewsID    *uint     `json:"news_id"`
	UserID    *uint     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
