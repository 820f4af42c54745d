package calendar

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	productID    = "-//salon-scheduler//agenda//PT"
	defaultRange = 30 * 24 * time.Hour
	maxRange     = 366 * 24 * time.Hour
)

// Source lists a staff member's appointments in [from, to).
type Source interface {
	Range(ctx context.Context, staffID uint, from, to time.Time) ([]models.Appointment, error)
}

type BusinessLoader interface {
	GetBusinessByID(ctx context.Context, id uint) (*models.Business, error)
}

type Feed struct {
	src        Source
	businesses BusinessLoader
	now        func() time.Time
}

func NewFeed(src Source, businesses BusinessLoader) *Feed {
	return &Feed{src: src, businesses: businesses, now: time.Now}
}

// Render builds the iCalendar document for the staff agenda. Empty from
// defaults to today, empty to to from plus 30 days.
func (f *Feed) Render(
	ctx context.Context,
	businessID uint,
	staffID uint,
	from string,
	to string,
) (string, error) {

	business, err := f.businesses.GetBusinessByID(ctx, businessID)
	if err != nil {
		return "", err
	}

	start, end, err := f.window(business.Timezone, from, to)
	if err != nil {
		return "", err
	}

	apps, err := f.src.Range(ctx, staffID, start, end)
	if err != nil {
		return "", err
	}

	return Build(business, apps, f.now()), nil
}

func (f *Feed) window(tz, from, to string) (time.Time, time.Time, error) {
	var start time.Time
	if from == "" {
		start, _ = timezone.DayBounds(timezone.NowIn(tz))
	} else {
		d, err := timezone.ParseDate(tz, from)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date")
		}
		start = d
	}

	end := start.Add(defaultRange)
	if to != "" {
		d, err := timezone.ParseDate(tz, to)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date")
		}
		_, end = timezone.DayBounds(d)
	}

	if !end.After(start) || end.Sub(start) > maxRange {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_range")
	}
	return start, end, nil
}

// Build renders apps as a VCALENDAR. Event UIDs are stable per appointment
// so calendar clients update instead of duplicating.
func Build(business *models.Business, apps []models.Appointment, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(business.Name)
	cal.SetXWRTimezone(business.Timezone)

	for _, ap := range apps {
		ev := cal.AddEvent(fmt.Sprintf("appointment-%d@%s", ap.ID, business.Slug))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetStartAt(ap.StartTime.UTC())
		ev.SetEndAt(ap.EndTime.UTC())
		ev.SetSummary(summary(ap))

		if ap.Notes != "" {
			ev.SetDescription(ap.Notes)
		}
		if business.Address != "" {
			ev.SetLocation(business.Address)
		}

		if ap.Status == string(appointment.StatusCancelled) {
			ev.SetStatus(ics.ObjectStatusCancelled)
		} else {
			ev.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize()
}

func summary(ap models.Appointment) string {
	switch {
	case ap.Service.Name != "" && ap.Customer.Name != "":
		return ap.Service.Name + " - " + ap.Customer.Name
	case ap.Service.Name != "":
		return ap.Service.Name
	default:
		return "Agendamento"
	}
}
