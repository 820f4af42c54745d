package models

import "time"

type Payment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`
	BusinessID    uint `gorm:"index" json:"business_id"`

	ProviderID string  `gorm:"size:64" json:"provider_id"`
	Status     string  `gorm:"size:20" json:"status"`
	Amount     float64 `json:"amount"`
	Method     string  `gorm:"size:40" json:"method"`

	CreatedAt time.Time `json:"created_at"`
}
