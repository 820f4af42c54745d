package schedule

import (
	"fmt"
	"time"
)

// Clock is a wall-clock time expressed as minutes since midnight.
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60
)

const clockLayout = "15:04"

// ParseClock parses an "HH:MM" string. "24:00" is accepted as end of day.
func ParseClock(hm string) (Clock, error) {
	if hm == "24:00" {
		return EndOfDay, nil
	}
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", hm, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(hm string) Clock {
	c, err := ParseClock(hm)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf returns the wall-clock part of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) Valid() bool {
	return c >= Midnight && c <= EndOfDay
}

func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// On places the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(c) * time.Minute)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
