package schedule

import "time"

// SpecialDate overrides the weekly pattern on one calendar day.
type SpecialDate struct {
	Date   time.Time
	Closed bool
	Hours  WorkingHours
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ResolveDay returns the effective configuration for date. A closed special
// date yields an inactive day. An open one replaces the hours and keeps only
// the weekly breaks that still fit inside the new window.
func ResolveDay(week *Week, specials []SpecialDate, date time.Time) DayConfig {
	base := week.Day(WeekdayOf(date))

	for _, sd := range specials {
		if !sameDay(sd.Date, date) {
			continue
		}
		if sd.Closed || !sd.Hours.Active {
			return DayConfig{}
		}

		day := DayConfig{Hours: sd.Hours}
		for _, b := range base.Breaks {
			if b.Start >= sd.Hours.Start && b.End <= sd.Hours.End {
				day.Breaks = append(day.Breaks, b)
			}
		}
		return day
	}

	return base
}
