package schedule

import "time"

// Weekday follows time.Weekday numbering (Sunday = 0).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday())
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return weekdayNames[d]
}
