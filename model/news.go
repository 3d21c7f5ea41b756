package model

import "time"

type News struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	UserID     *uint     `json:"user_id"`
	CategoryID *uint     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName pins the uncountable noun so the naming strategy does not
// guess at a plural.
func (News) TableName() string { return "news" }
