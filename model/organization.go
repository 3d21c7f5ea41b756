package model

import "time"

/*

Organization is the singleton public profile of the NGO. Exactly one row
exists with OrganizationID as its primary key; it is seeded at boot and
can only be updated, never created or deleted through the API.

Logo follows the same attachment-store key convention as the Image
fields on content resources.

*/

// OrganizationID is the fixed primary key of the singleton row.
const OrganizationID uint = 1

type Organization struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `json:"name"`
	Logo             string    `json:"logo"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	WelcomeText      string    `json:"welcome_text"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	CellPhone        string    `json:"cell_phone"`
	FacebookURL      string    `gorm:"column:facebook_url" json:"facebook_url"`
	LinkedinURL      string    `gorm:"column:linkedin_url" json:"linkedin_url"`
	InstagramURL     string    `gorm:"column:instagram_url" json:"instagram_url"`
	TwitterURL       string    `gorm:"column:twitter_url" json:"twitter_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
