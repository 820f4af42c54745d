package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByDate lists the appointments starting on date (YYYY-MM-DD, business
// timezone).
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	staffID uint,
	businessID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(business.Timezone, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := timezone.DayBounds(day)
	return uc.period(ctx, staffID, start, end)
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	staffID uint,
	businessID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(business.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	return uc.period(ctx, staffID, start, start.AddDate(0, 1, 0))
}

// Range returns the raw appointments in [from, to), used by the calendar feed.
func (uc *ListAppointments) Range(
	ctx context.Context,
	staffID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForPeriod(ctx, staffID, from, to)
}

func (uc *ListAppointments) period(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, staffID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			CustomerName:  ap.Customer.Name,
			CustomerPhone: ap.Customer.Phone,
			ServiceName:   ap.Service.Name,
			PaymentStatus: ap.PaymentStatus,
		})
	}

	return out, nil
}
