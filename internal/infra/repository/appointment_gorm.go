package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business / staff
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *AppointmentGormRepository) GetStaff(
	ctx context.Context,
	businessID uint,
	staffID uint,
) (*models.User, error) {

	var staff models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", staffID, businessID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = true", serviceID, businessID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	customer := models.Customer{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		FirstOrCreate(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentForStaff(
	ctx context.Context,
	appointmentID uint,
	staffID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND staff_id = ?", appointmentID, staffID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Business", "Staff", "Customer", "Service").Save(ap).Error
}

func (r *AppointmentGormRepository) SaveCompleted(
	ctx context.Context,
	ap *models.Appointment,
	points int,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Business", "Staff", "Customer", "Service").Save(ap).Error; err != nil {
			return err
		}
		if points <= 0 {
			return nil
		}
		return tx.Model(&models.Customer{}).
			Where("id = ? AND business_id = ?", ap.CustomerID, ap.BusinessID).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).
			Error
	})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingDay(
	ctx context.Context,
	staffID uint,
	weekday int,
) (*models.WorkingHours, []models.BreakInterval, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND weekday = ?", staffID, weekday).
		First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var breaks []models.BreakInterval
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND weekday = ?", staffID, weekday).
		Order("start_time ASC").
		Find(&breaks).Error; err != nil {
		return nil, nil, err
	}

	return &wh, breaks, nil
}

func (r *AppointmentGormRepository) GetSpecialDate(
	ctx context.Context,
	staffID uint,
	date string,
) (*models.SpecialDate, error) {

	var sd models.SpecialDate
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND date = ?", staffID, date).
		First(&sd).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sd, nil
}

func (r *AppointmentGormRepository) ListBusy(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"staff_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			staffID, string(domain.StatusScheduled), end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"staff_id = ? AND start_time >= ? AND start_time < ?",
			staffID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
