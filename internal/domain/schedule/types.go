package schedule

import "time"

// WorkingHours is one day's operating window.
type WorkingHours struct {
	Active bool
	Start  Clock
	End    Clock
}

// Open reports whether the window can produce slots at all.
func (wh WorkingHours) Open() bool {
	return wh.Active && wh.Start.Valid() && wh.End.Valid() && wh.Start < wh.End
}

// BreakInterval is a non-bookable sub-interval of a working day.
type BreakInterval struct {
	Start Clock
	End   Clock
}

// Contains reports whether c lies in [Start, End).
func (b BreakInterval) Contains(c Clock) bool {
	return c >= b.Start && c < b.End
}

// Overlaps reports whether [start, end) intersects the break.
func (b BreakInterval) Overlaps(start, end Clock) bool {
	return start < b.End && end > b.Start
}

// Busy is an already booked interval of the staff member on the target day.
type Busy struct {
	Start Clock
	End   Clock
}

// SlotCandidate is one point of the day grid.
type SlotCandidate struct {
	Time      time.Time
	Available bool
	IsBreak   bool
}

// Label is the "HH:MM" form of the candidate time.
func (s SlotCandidate) Label() string {
	return s.Time.Format(clockLayout)
}

// DayConfig groups the hours and breaks of a single weekday.
type DayConfig struct {
	Hours  WorkingHours
	Breaks []BreakInterval
}

// Week is indexed by Weekday, so every day is always present.
type Week [DaysInWeek]DayConfig

func (w *Week) Day(d Weekday) DayConfig {
	if !d.Valid() {
		return DayConfig{}
	}
	return w[d]
}
