package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// CancelAppointment frees the slot of a scheduled appointment. The row is kept
// so the agenda and the calendar feed still show it as cancelled.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(repo domain.Repository, audit *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	businessID uint,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	business, ap, err := loadOwned(ctx, uc.repo, businessID, staffID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, timezone.NowIn(business.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &staffID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"start":       ap.StartTime,
			"customer_id": ap.CustomerID,
		},
	})

	return ap, nil
}

// loadOwned fetches the business and one appointment of staffID. Appointments
// of other staff members read as not found.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	businessID, staffID, appointmentID uint,
) (*models.Business, *models.Appointment, error) {

	business, err := repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}

	ap, err := repo.GetAppointmentForStaff(ctx, appointmentID, staffID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("appointment_not_found")
	}
	return business, ap, nil
}
