package model

import "time"

// Seeded role ids. Every registered account starts as a standard user;
// the admin role carries the roles.update grant.
const (
	AdminRoleID uint = 1
	UserRoleID  uint = 2
)

// PermissionRolesUpdate gates role renames.
const PermissionRolesUpdate = "roles.update"

type Role struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `json:"name"`
	Permissions []*Permission `gorm:"many2many:role_permissions;" json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Permission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
