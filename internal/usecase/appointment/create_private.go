package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePrivateAppointmentInput struct {
	BusinessID uint
	StaffID    uint

	// ActorID is the authenticated user; nil for public bookings.
	ActorID *uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePrivateAppointment struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
	log    *zap.Logger
	now    func() time.Time
}

func NewCreatePrivateAppointment(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreatePrivateAppointment {
	return &CreatePrivateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		log:    log,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePrivateAppointment) Execute(
	ctx context.Context,
	in CreatePrivateAppointmentInput,
) (*models.Appointment, error) {

	phone, ok := validators.NormalizePhone(in.CustomerPhone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	if in.CustomerEmail != "" && !validators.IsEmailValid(in.CustomerEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	// --------------------------------------------------
	// Business + local start time
	// --------------------------------------------------
	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	start, err := timezone.ParseDateTime(business.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := time.Duration(max(business.MinAdvanceMinutes, 0)) * time.Minute
	if start.Before(uc.now().Add(minAdvance)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Service + staff
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	staff, err := uc.repo.GetStaff(ctx, in.BusinessID, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Check and insert under the staff lock
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, domain.StaffLockKey(staff.ID))
	if err != nil {
		uc.log.Warn("booking lock unavailable", zap.Uint("staff_id", staff.ID), zap.Error(err))
		return nil, httperr.ErrBusiness("booking_in_progress")
	}
	defer release()

	rest := domain.RestMinutes(staff, business)

	day, busy, err := loadDay(ctx, uc.repo, staff.ID, start, rest)
	if err != nil {
		return nil, err
	}

	err = schedule.CheckBooking(
		day,
		busy,
		rest,
		schedule.ClockOf(start),
		service.DurationMin,
	)
	if err != nil {
		if errors.Is(err, schedule.ErrTimeConflict) {
			uc.dispatchConflict(in, start, end)
		}
		return nil, bookingError(err)
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.BusinessID,
		in.CustomerName,
		phone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BusinessID: in.BusinessID,
		StaffID:    staff.ID,
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			uc.dispatchConflict(in, start, end)
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	ap.Customer = *customer
	ap.Service = *service

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func (uc *CreatePrivateAppointment) dispatchConflict(in CreatePrivateAppointmentInput, start, end time.Time) {
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "appointment_conflict",
		Entity:     "appointment",
		Metadata: map[string]any{
			"staff_id": in.StaffID,
			"start":    start,
			"end":      end,
		},
	})
}

func bookingError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrTimeConflict):
		return httperr.ErrBusiness("time_conflict")
	case errors.Is(err, schedule.ErrBreakConflict):
		return httperr.ErrBusiness("break_conflict")
	case errors.Is(err, schedule.ErrDayClosed), errors.Is(err, schedule.ErrOutsideWorkingHours):
		return httperr.ErrBusiness("outside_working_hours")
	}
	return err
}
