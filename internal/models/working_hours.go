package models

import "time"

type WorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"uniqueIndex:idx_hours_staff_weekday" json:"staff_id"`

	Weekday int `gorm:"uniqueIndex:idx_hours_staff_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BreakInterval struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"index:idx_breaks_staff_weekday" json:"staff_id"`
	Weekday int  `gorm:"index:idx_breaks_staff_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}

// SpecialDate overrides the weekly hours of a staff member on one day
// (holiday, shortened shift, extra opening).
type SpecialDate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StaffID uint   `gorm:"uniqueIndex:idx_special_staff_date" json:"staff_id"`
	Date    string `gorm:"size:10;uniqueIndex:idx_special_staff_date" json:"date"` // YYYY-MM-DD

	Closed    bool   `json:"closed"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Note      string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
