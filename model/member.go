package model

import "time"

type Member struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	FacebookURL string    `gorm:"column:facebook_url" json:"facebook_url"`
	LinkedinURL string    `gorm:"column:linkedin_url" json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
