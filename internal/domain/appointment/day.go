package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DayConfig converts the stored weekday row, its breaks and an optional
// special date into the engine's view of date. Rows with unparsable clocks
// yield a closed day.
func DayConfig(
	date time.Time,
	hours *models.WorkingHours,
	breaks []models.BreakInterval,
	special *models.SpecialDate,
) schedule.DayConfig {

	var week schedule.Week
	wd := schedule.WeekdayOf(date)

	if hours != nil {
		wh, ok := parseHours(hours.Active, hours.StartTime, hours.EndTime)
		if ok {
			week[wd] = schedule.DayConfig{Hours: wh, Breaks: parseBreaks(breaks)}
		}
	}

	var specials []schedule.SpecialDate
	if special != nil {
		sd := schedule.SpecialDate{Date: date, Closed: special.Closed}
		if !special.Closed {
			wh, ok := parseHours(true, special.StartTime, special.EndTime)
			if !ok {
				sd.Closed = true
			}
			sd.Hours = wh
		}
		specials = append(specials, sd)
	}

	return schedule.ResolveDay(&week, specials, date)
}

func parseHours(active bool, start, end string) (schedule.WorkingHours, bool) {
	if !active {
		return schedule.WorkingHours{}, true
	}
	s, err := schedule.ParseClock(start)
	if err != nil {
		return schedule.WorkingHours{}, false
	}
	e, err := schedule.ParseClock(end)
	if err != nil {
		return schedule.WorkingHours{}, false
	}
	return schedule.WorkingHours{Active: true, Start: s, End: e}, true
}

func parseBreaks(rows []models.BreakInterval) []schedule.BreakInterval {
	out := make([]schedule.BreakInterval, 0, len(rows))
	for _, b := range rows {
		s, err1 := schedule.ParseClock(b.StartTime)
		e, err2 := schedule.ParseClock(b.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, schedule.BreakInterval{Start: s, End: e})
	}
	return out
}

// BusyIntervals clips appointments to the calendar day of date (in date's
// location) and returns them as engine intervals. An appointment of the
// previous day whose rest buffer still reaches into this day is kept with an
// End before Midnight, so only the remaining part of the buffer blocks.
func BusyIntervals(date time.Time, apps []models.Appointment, restMinutes int) []schedule.Busy {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	rest := time.Duration(max(restMinutes, 0)) * time.Minute

	out := make([]schedule.Busy, 0, len(apps))
	for _, ap := range apps {
		start := ap.StartTime.In(date.Location())
		end := ap.EndTime.In(date.Location())
		if !start.Before(dayEnd) || !end.Add(rest).After(dayStart) {
			continue
		}

		if !end.After(dayStart) {
			gap := int(dayStart.Sub(end) / time.Minute)
			out = append(out, schedule.Busy{Start: schedule.Midnight, End: schedule.Midnight.Add(-gap)})
			continue
		}

		b := schedule.Busy{Start: schedule.Midnight, End: schedule.EndOfDay}
		if start.After(dayStart) {
			b.Start = schedule.ClockOf(start)
		}
		if end.Before(dayEnd) {
			b.End = schedule.ClockOf(end)
		}
		out = append(out, b)
	}
	return out
}
