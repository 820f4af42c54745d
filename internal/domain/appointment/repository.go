package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Business / staff --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetStaff(
		ctx context.Context,
		businessID uint,
		staffID uint,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForStaff(
		ctx context.Context,
		appointmentID uint,
		staffID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveCompleted persists a completed appointment and credits the
	// customer's loyalty points in one transaction.
	SaveCompleted(
		ctx context.Context,
		ap *models.Appointment,
		points int,
	) error

	// -------- Availability --------

	// GetWorkingDay returns nil hours when the weekday was never configured.
	GetWorkingDay(
		ctx context.Context,
		staffID uint,
		weekday int,
	) (*models.WorkingHours, []models.BreakInterval, error)

	// GetSpecialDate returns nil when date has no override.
	GetSpecialDate(
		ctx context.Context,
		staffID uint,
		date string,
	) (*models.SpecialDate, error)

	// ListBusy returns the scheduled appointments overlapping [start, end).
	ListBusy(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

// Locker serializes bookings of the same staff member across processes.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
