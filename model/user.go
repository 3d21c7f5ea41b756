package model

import "time"

/*

User is an account that can author content and, through its roles, hold
permissions.

Password: bcrypt hash, never serialized
ProfileImage: attachment-store key, optional
Roles: "many-to-many" relation through user_roles

*/

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Latitude     *int      `json:"latitude"`
	Longitude    *int      `json:"longitude"`
	Address      string    `json:"address"`
	ProfileImage string    `json:"profile_image"`
	Roles        []*Role   `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
