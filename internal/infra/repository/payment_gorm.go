package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetAppointment(
	ctx context.Context,
	businessID uint,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where("id = ? AND business_id = ? AND staff_id = ?", appointmentID, businessID, staffID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *PaymentGormRepository) SaveCharge(
	ctx context.Context,
	ap *models.Appointment,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		return tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"payment_status": p.Status,
				"payment_id":     p.ID,
			}).Error
	})
}

var _ payment.Repository = (*PaymentGormRepository)(nil)
