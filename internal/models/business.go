package models

import "time"

type Business struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	MinAdvanceMinutes  int `gorm:"default:120" json:"min_advance_minutes"`
	DefaultRestMinutes int `gorm:"default:0" json:"default_rest_minutes"`

	// Points granted per whole currency unit of a completed service.
	LoyaltyPointsPerUnit int `gorm:"default:0" json:"loyalty_points_per_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
