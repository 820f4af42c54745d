package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func nineToFive() WorkingHours {
	return WorkingHours{Active: true, Start: MustClock("09:00"), End: MustClock("17:00")}
}

func labels(slots []SlotCandidate) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Label())
	}
	return out
}

func find(slots []SlotCandidate, hm string) (SlotCandidate, bool) {
	for _, s := range slots {
		if s.Label() == hm {
			return s, true
		}
	}
	return SlotCandidate{}, false
}

func TestComputeSlots_FullOpenDay(t *testing.T) {
	slots := ComputeSlots(nineToFive(), nil, nil, 0, testDay, 30)

	require.Len(t, slots, 23)

	first := slots[0]
	assert.Equal(t, "09:00", first.Label())
	assert.True(t, first.Available)
	assert.False(t, first.IsBreak)
	assert.True(t, first.Time.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))

	last := slots[len(slots)-1]
	assert.Equal(t, "16:20", last.Label())
	assert.False(t, last.Time.Add(30*time.Minute).After(MustClock("17:00").On(testDay)))

	_, ok := find(slots, "16:40")
	assert.False(t, ok, "16:40 + 30min runs past closing")
	_, ok = find(slots, "17:00")
	assert.False(t, ok)
}

func TestComputeSlots_ClosedDayIsEmpty(t *testing.T) {
	hours := nineToFive()
	hours.Active = false

	slots := ComputeSlots(hours, []BreakInterval{{MustClock("12:00"), MustClock("13:00")}},
		[]Busy{{MustClock("10:00"), MustClock("10:30")}}, 10, testDay, 30)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlots_MalformedInputsAreEmpty(t *testing.T) {
	cases := map[string]struct {
		hours    WorkingHours
		duration int
	}{
		"negative start":  {WorkingHours{Active: true, Start: -5, End: MustClock("17:00")}, 30},
		"end past day":    {WorkingHours{Active: true, Start: MustClock("09:00"), End: EndOfDay + 1}, 30},
		"start after end": {WorkingHours{Active: true, Start: MustClock("18:00"), End: MustClock("09:00")}, 30},
		"zero duration":   {nineToFive(), 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ComputeSlots(tc.hours, nil, nil, 0, testDay, tc.duration))
		})
	}
}

func TestComputeSlots_RestTimeBuffer(t *testing.T) {
	appointments := []Busy{{MustClock("10:00"), MustClock("10:30")}}

	slots := ComputeSlots(nineToFive(), nil, appointments, 15, testDay, 30)

	s, ok := find(slots, "09:20")
	require.True(t, ok)
	assert.True(t, s.Available)

	// 09:40 would end inside the appointment, 10:00..10:40 start inside the
	// appointment or its rest buffer; none of them is a break, so they are
	// left out.
	for _, hm := range []string{"09:40", "10:00", "10:20", "10:40"} {
		_, ok := find(slots, hm)
		assert.False(t, ok, hm)
	}

	s, ok = find(slots, "11:00")
	require.True(t, ok)
	assert.True(t, s.Available)

	day := DayConfig{Hours: nineToFive()}
	assert.ErrorIs(t, CheckBooking(day, appointments, 15, MustClock("10:30"), 30), ErrTimeConflict)
	assert.ErrorIs(t, CheckBooking(day, appointments, 15, MustClock("10:40"), 30), ErrTimeConflict)
	assert.NoError(t, CheckBooking(day, appointments, 15, MustClock("10:45"), 30))
}

func TestComputeSlots_BreakPointsAreShownButNotBookable(t *testing.T) {
	breaks := []BreakInterval{{MustClock("12:00"), MustClock("13:00")}}

	slots := ComputeSlots(nineToFive(), breaks, nil, 0, testDay, 30)

	for _, hm := range []string{"12:00", "12:20", "12:40"} {
		s, ok := find(slots, hm)
		require.True(t, ok, hm)
		assert.True(t, s.IsBreak, hm)
		assert.False(t, s.Available, hm)
	}

	_, ok := find(slots, "11:40")
	assert.False(t, ok, "11:40 runs into the break")

	s, ok := find(slots, "13:00")
	require.True(t, ok)
	assert.True(t, s.Available)
	assert.False(t, s.IsBreak)
}

func TestComputeSlots_BreakNearClosingStillNeedsTime(t *testing.T) {
	breaks := []BreakInterval{{MustClock("16:20"), MustClock("17:00")}}

	slots := ComputeSlots(nineToFive(), breaks, nil, 0, testDay, 30)

	s, ok := find(slots, "16:20")
	require.True(t, ok)
	assert.True(t, s.IsBreak)

	_, ok = find(slots, "16:40")
	assert.False(t, ok)
}

func TestComputeSlots_Deterministic(t *testing.T) {
	breaks := []BreakInterval{{MustClock("13:00"), MustClock("13:40")}}
	appointments := []Busy{
		{MustClock("09:20"), MustClock("10:00")},
		{MustClock("15:00"), MustClock("15:45")},
	}

	a := ComputeSlots(nineToFive(), breaks, appointments, 10, testDay, 45)
	b := ComputeSlots(nineToFive(), breaks, appointments, 10, testDay, 45)

	assert.Equal(t, a, b)
}

func TestComputeSlots_NoDoubleBooking(t *testing.T) {
	appointments := []Busy{
		{MustClock("09:10"), MustClock("09:55")},
		{MustClock("11:00"), MustClock("11:30")},
		{MustClock("14:05"), MustClock("15:20")},
	}

	for _, rest := range []int{0, 5, 15, 40} {
		for _, duration := range []int{15, 30, 50, 90} {
			slots := ComputeSlots(nineToFive(), nil, appointments, rest, testDay, duration)
			for _, s := range slots {
				if !s.Available {
					continue
				}
				start := ClockOf(s.Time)
				end := start.Add(duration)
				for _, a := range appointments {
					overlaps := start < a.End.Add(rest) && end > a.Start
					assert.False(t, overlaps, "rest=%d duration=%d slot=%s appointment=%s",
						rest, duration, s.Label(), a.Start)
				}
			}
		}
	}
}

func TestComputeSlots_UniqueLabels(t *testing.T) {
	slots := ComputeSlots(WorkingHours{Active: true, Start: Midnight, End: EndOfDay}, nil, nil, 0, testDay, 20)

	seen := map[string]bool{}
	for _, l := range labels(slots) {
		assert.False(t, seen[l], l)
		seen[l] = true
	}
	assert.Len(t, slots, 72)
}

func TestComputeSlots_UsesDateLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	date := time.Date(2026, 3, 10, 15, 47, 0, 0, loc)

	slots := ComputeSlots(nineToFive(), nil, nil, 0, date, 30)

	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, loc), slots[0].Time)
}

func TestConflicts_BoundarySemantics(t *testing.T) {
	a := Busy{MustClock("10:00"), MustClock("10:30")}

	cases := []struct {
		name     string
		start    string
		duration int
		rest     int
		want     bool
	}{
		{"ends exactly at start", "09:30", 30, 0, false},
		{"starts exactly at end", "10:30", 30, 0, false},
		{"starts exactly at buffer end", "10:45", 30, 15, false},
		{"starts inside buffer", "10:44", 30, 15, true},
		{"ends inside appointment", "09:45", 30, 0, true},
		{"ends exactly at buffer end", "10:15", 30, 15, true},
		{"spans appointment", "09:50", 60, 0, true},
		{"starts inside appointment", "10:10", 10, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := MustClock(tc.start)
			assert.Equal(t, tc.want, conflicts(start, start.Add(tc.duration), a, tc.rest))
		})
	}
}
