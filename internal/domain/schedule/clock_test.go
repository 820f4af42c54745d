package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(545), c)
	assert.Equal(t, "09:05", c.String())

	c, err = ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, c)

	for _, bad := range []string{"", "9h", "25:00", "12:60", "noon"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockOn(t *testing.T) {
	date := time.Date(2026, 5, 1, 22, 13, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC), MustClock("08:30").On(date))
	assert.Equal(t, MustClock("22:13"), ClockOf(date))
}

func TestResolveDay(t *testing.T) {
	var week Week
	week[Tuesday] = DayConfig{
		Hours:  WorkingHours{Active: true, Start: MustClock("09:00"), End: MustClock("17:00")},
		Breaks: []BreakInterval{br("10:00", "10:15"), br("12:00", "13:00")},
	}
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	nextTuesday := tuesday.AddDate(0, 0, 7)

	t.Run("weekly pattern", func(t *testing.T) {
		day := ResolveDay(&week, nil, tuesday)
		assert.Equal(t, week[Tuesday], day)
	})

	t.Run("closed special date", func(t *testing.T) {
		day := ResolveDay(&week, []SpecialDate{{Date: tuesday, Closed: true}}, tuesday)
		assert.False(t, day.Hours.Open())
		assert.Empty(t, ComputeSlots(day.Hours, day.Breaks, nil, 0, tuesday, 30))
	})

	t.Run("shortened special date keeps fitting breaks", func(t *testing.T) {
		specials := []SpecialDate{{
			Date:  tuesday,
			Hours: WorkingHours{Active: true, Start: MustClock("09:00"), End: MustClock("12:00")},
		}}
		day := ResolveDay(&week, specials, tuesday)
		assert.Equal(t, MustClock("12:00"), day.Hours.End)
		assert.Equal(t, []BreakInterval{br("10:00", "10:15")}, day.Breaks)

		assert.Equal(t, week[Tuesday], ResolveDay(&week, specials, nextTuesday))
	})
}

func TestCheckBooking(t *testing.T) {
	day := DayConfig{
		Hours:  WorkingHours{Active: true, Start: MustClock("09:00"), End: MustClock("17:00")},
		Breaks: []BreakInterval{br("12:00", "13:00")},
	}

	assert.NoError(t, CheckBooking(day, nil, 0, MustClock("09:00"), 60))
	assert.NoError(t, CheckBooking(day, nil, 0, MustClock("11:07"), 53))
	assert.ErrorIs(t, CheckBooking(day, nil, 0, MustClock("08:30"), 30), ErrOutsideWorkingHours)
	assert.ErrorIs(t, CheckBooking(day, nil, 0, MustClock("16:45"), 30), ErrOutsideWorkingHours)
	assert.ErrorIs(t, CheckBooking(day, nil, 0, MustClock("11:45"), 30), ErrBreakConflict)
	assert.ErrorIs(t, CheckBooking(DayConfig{}, nil, 0, MustClock("10:00"), 30), ErrDayClosed)

	busy := []Busy{{MustClock("14:20"), MustClock("14:40")}}
	assert.ErrorIs(t, CheckBooking(day, busy, 0, MustClock("14:00"), 60), ErrTimeConflict)
}
