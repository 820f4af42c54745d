package hours

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/hours"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BreakDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayDTO struct {
	Weekday   int        `json:"weekday"`
	Active    bool       `json:"active"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Breaks    []BreakDTO `json:"breaks"`
}

type Week struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWeek(repo domain.Repository, audit *audit.Dispatcher) *Week {
	return &Week{repo: repo, audit: audit}
}

// Get always returns seven days, Sunday first. Unconfigured days are
// inactive.
func (uc *Week) Get(ctx context.Context, staffID uint) ([]DayDTO, error) {
	rows, breaks, err := uc.repo.ListWeek(ctx, staffID)
	if err != nil {
		return nil, err
	}

	out := make([]DayDTO, schedule.DaysInWeek)
	for i := range out {
		out[i] = DayDTO{Weekday: i, Breaks: []BreakDTO{}}
	}

	for _, r := range rows {
		if !schedule.Weekday(r.Weekday).Valid() {
			continue
		}
		d := &out[r.Weekday]
		d.Active = r.Active
		d.StartTime = r.StartTime
		d.EndTime = r.EndTime
	}

	for _, b := range breaks {
		if !schedule.Weekday(b.Weekday).Valid() {
			continue
		}
		d := &out[b.Weekday]
		d.Breaks = append(d.Breaks, BreakDTO{Start: b.StartTime, End: b.EndTime})
	}

	return out, nil
}

// Update validates the full week and replaces the stored one. Days missing
// from days are stored as inactive.
func (uc *Week) Update(
	ctx context.Context,
	businessID uint,
	staffID uint,
	days []DayDTO,
) error {

	week, err := BuildWeek(days)
	if err != nil {
		return err
	}

	if err := schedule.ValidateBusinessHours(week); err != nil {
		return err
	}

	var (
		rows   []models.WorkingHours
		breaks []models.BreakInterval
	)

	for wd := schedule.Sunday; wd <= schedule.Saturday; wd++ {
		day := week[wd]
		row := models.WorkingHours{StaffID: staffID, Weekday: int(wd), Active: day.Hours.Active}
		if day.Hours.Active {
			row.StartTime = day.Hours.Start.String()
			row.EndTime = day.Hours.End.String()
		}
		rows = append(rows, row)

		if !day.Hours.Active {
			continue
		}

		sorted := append([]schedule.BreakInterval(nil), day.Breaks...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
		for _, b := range sorted {
			breaks = append(breaks, models.BreakInterval{
				StaffID:   staffID,
				Weekday:   int(wd),
				StartTime: b.Start.String(),
				EndTime:   b.End.String(),
			})
		}
	}

	if err := uc.repo.ReplaceWeek(ctx, staffID, rows, breaks); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &staffID,
		Action:     "working_hours_updated",
		Entity:     "working_hours",
	})

	return nil
}

// BuildWeek parses request days into the engine's week. A weekday given twice
// or out of range is rejected with invalid_weekday; malformed clocks with
// invalid_time.
func BuildWeek(days []DayDTO) (schedule.Week, error) {
	var (
		week schedule.Week
		seen [schedule.DaysInWeek]bool
	)

	for _, d := range days {
		wd := schedule.Weekday(d.Weekday)
		if !wd.Valid() || seen[wd] {
			return week, httperr.ErrBusiness("invalid_weekday")
		}
		seen[wd] = true

		if !d.Active {
			continue
		}

		start, err := schedule.ParseClock(d.StartTime)
		if err != nil {
			return week, httperr.ErrBusiness("invalid_time")
		}
		end, err := schedule.ParseClock(d.EndTime)
		if err != nil {
			return week, httperr.ErrBusiness("invalid_time")
		}

		cfg := schedule.DayConfig{
			Hours: schedule.WorkingHours{Active: true, Start: start, End: end},
		}
		for _, b := range d.Breaks {
			bs, err := schedule.ParseClock(b.Start)
			if err != nil {
				return week, httperr.ErrBusiness("invalid_time")
			}
			be, err := schedule.ParseClock(b.End)
			if err != nil {
				return week, httperr.ErrBusiness("invalid_time")
			}
			cfg.Breaks = append(cfg.Breaks, schedule.BreakInterval{Start: bs, End: be})
		}

		week[wd] = cfg
	}

	return week, nil
}
