package hours

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SpecialDateInput struct {
	Date      string `json:"date" binding:"required"`
	Closed    bool   `json:"closed"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note"`
}

func (uc *Week) ListSpecialDates(ctx context.Context, staffID uint, from, to string) ([]models.SpecialDate, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := timezone.ParseDate("UTC", d); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}
	return uc.repo.ListSpecialDates(ctx, staffID, from, to)
}

// UpsertSpecialDate stores an override. Open days need start < end.
func (uc *Week) UpsertSpecialDate(
	ctx context.Context,
	businessID uint,
	staffID uint,
	in SpecialDateInput,
) (*models.SpecialDate, error) {

	if _, err := timezone.ParseDate("UTC", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	sd := &models.SpecialDate{
		StaffID: staffID,
		Date:    in.Date,
		Closed:  in.Closed,
		Note:    in.Note,
	}

	if !in.Closed {
		start, err := schedule.ParseClock(in.StartTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		end, err := schedule.ParseClock(in.EndTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		if start >= end {
			return nil, httperr.ErrBusiness("start_not_before_end")
		}
		sd.StartTime = start.String()
		sd.EndTime = end.String()
	}

	if err := uc.repo.UpsertSpecialDate(ctx, sd); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &staffID,
		Action:     "special_date_saved",
		Entity:     "special_date",
		Metadata:   map[string]any{"date": sd.Date, "closed": sd.Closed},
	})

	return sd, nil
}

func (uc *Week) DeleteSpecialDate(ctx context.Context, businessID, staffID uint, date string) error {
	found, err := uc.repo.DeleteSpecialDate(ctx, staffID, date)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrBusiness("special_date_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &staffID,
		Action:     "special_date_deleted",
		Entity:     "special_date",
		Metadata:   map[string]any{"date": date},
	})
	return nil
}
