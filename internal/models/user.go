package models

import "time"

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User is a staff member of a business. Credentials live in the hosted auth
// platform; the token subject is the user ID.
type User struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	BusinessID uint     `gorm:"index" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;default:'owner'" json:"role"`

	// nil falls back to Business.DefaultRestMinutes.
	RestMinutes *int `json:"rest_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
