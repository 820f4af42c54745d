package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// loadDay gathers the effective hours of staffID on date and the scheduled
// appointments of that day, including those of the previous evening whose
// rest buffer crosses midnight. Appointments are always read fresh.
func loadDay(
	ctx context.Context,
	repo domain.Repository,
	staffID uint,
	date time.Time,
	restMinutes int,
) (schedule.DayConfig, []schedule.Busy, error) {

	wh, breaks, err := repo.GetWorkingDay(ctx, staffID, int(date.Weekday()))
	if err != nil {
		return schedule.DayConfig{}, nil, err
	}

	special, err := repo.GetSpecialDate(ctx, staffID, date.Format(timezone.DateLayout))
	if err != nil {
		return schedule.DayConfig{}, nil, err
	}

	day := domain.DayConfig(date, wh, breaks, special)
	if !day.Hours.Open() {
		return day, nil, nil
	}

	start, end := timezone.DayBounds(date)
	start = start.Add(-time.Duration(max(restMinutes, 0)) * time.Minute)

	apps, err := repo.ListBusy(ctx, staffID, start, end)
	if err != nil {
		return schedule.DayConfig{}, nil, err
	}

	return day, domain.BusyIntervals(date, apps, restMinutes), nil
}
