package appointment

type AvailabilityInput struct {
	BusinessID uint
	StaffID    uint
	ServiceID  uint
	Date       string // YYYY-MM-DD in the business timezone
}

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	IsBreak   bool   `json:"is_break"`
}
