package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func br(start, end string) BreakInterval {
	return BreakInterval{Start: MustClock(start), End: MustClock(end)}
}

func TestValidateBreaks(t *testing.T) {
	dayStart, dayEnd := MustClock("09:00"), MustClock("17:00")

	cases := []struct {
		name   string
		breaks []BreakInterval
		want   error
	}{
		{"none", nil, nil},
		{"single", []BreakInterval{br("12:00", "13:00")}, nil},
		{"adjacent", []BreakInterval{br("12:00", "12:30"), br("12:30", "13:00")}, nil},
		{"unsorted", []BreakInterval{br("15:00", "15:15"), br("10:00", "10:15")}, nil},
		{"whole day", []BreakInterval{br("09:00", "17:00")}, nil},
		{"overlap", []BreakInterval{br("10:00", "11:00"), br("10:30", "11:30")}, ErrBreaksOverlap},
		{"before opening", []BreakInterval{br("08:00", "09:00")}, ErrBreakOutsideHours},
		{"after closing", []BreakInterval{br("16:30", "17:30")}, ErrBreakOutsideHours},
		{"empty", []BreakInterval{br("12:00", "12:00")}, ErrBreakEndBeforeStart},
		{"reversed", []BreakInterval{br("13:00", "12:00")}, ErrBreakEndBeforeStart},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBreaks(tc.breaks, dayStart, dayEnd)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateBreaks_DoesNotReorderInput(t *testing.T) {
	breaks := []BreakInterval{br("15:00", "15:15"), br("10:00", "10:15")}

	require.NoError(t, ValidateBreaks(breaks, MustClock("09:00"), MustClock("17:00")))
	assert.Equal(t, MustClock("15:00"), breaks[0].Start)
}

func TestValidateBreaks_ReportsOriginalIndex(t *testing.T) {
	breaks := []BreakInterval{br("14:00", "15:00"), br("10:00", "11:00"), br("14:30", "14:45")}

	err := ValidateBreaks(breaks, MustClock("09:00"), MustClock("17:00"))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 2, ve.Index)
	assert.Equal(t, "break 3: breaks overlap", err.Error())
}

func TestValidateBusinessHours(t *testing.T) {
	open := WorkingHours{Active: true, Start: MustClock("09:00"), End: MustClock("17:00")}

	t.Run("valid week", func(t *testing.T) {
		var week Week
		for d := Monday; d <= Friday; d++ {
			week[d] = DayConfig{Hours: open, Breaks: []BreakInterval{br("12:00", "13:00")}}
		}
		assert.NoError(t, ValidateBusinessHours(week))
	})

	t.Run("inactive days are skipped", func(t *testing.T) {
		var week Week
		week[Sunday] = DayConfig{
			Hours:  WorkingHours{Active: false, Start: MustClock("18:00"), End: MustClock("08:00")},
			Breaks: []BreakInterval{br("07:00", "06:00")},
		}
		assert.NoError(t, ValidateBusinessHours(week))
	})

	t.Run("start after end", func(t *testing.T) {
		var week Week
		week[Monday] = DayConfig{Hours: WorkingHours{Active: true, Start: MustClock("17:00"), End: MustClock("09:00")}}

		err := ValidateBusinessHours(week)
		assert.ErrorIs(t, err, ErrStartNotBeforeEnd)
		assert.Equal(t, "monday: start must be before end", err.Error())
	})

	t.Run("break failure is day qualified", func(t *testing.T) {
		var week Week
		week[Tuesday] = DayConfig{Hours: open, Breaks: []BreakInterval{br("10:00", "11:00"), br("10:30", "11:30")}}

		err := ValidateBusinessHours(week)
		assert.ErrorIs(t, err, ErrBreaksOverlap)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "tuesday", ve.Day)
		assert.Equal(t, "tuesday: break 2: breaks overlap", err.Error())
	})
}
