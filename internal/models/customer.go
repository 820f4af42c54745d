package models

import "time"

// Customer has no login; phone is the identity within a business.
type Customer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex:idx_customer_business_phone" json:"business_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex:idx_customer_business_phone" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	LoyaltyPoints int `gorm:"default:0" json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
