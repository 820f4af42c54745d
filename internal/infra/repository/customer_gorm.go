package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/customer"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) List(
	ctx context.Context,
	businessID uint,
	query string,
) ([]models.Customer, error) {

	q := r.db.WithContext(ctx).Where("business_id = ?", businessID)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var out []models.Customer
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerGormRepository) UpsertByPhone(
	ctx context.Context,
	c *models.Customer,
) (bool, error) {

	var existing models.Customer
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", c.BusinessID, c.Phone).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.WithContext(ctx).Create(c).Error
	}
	if err != nil {
		return false, err
	}

	updates := map[string]any{}
	if c.Name != "" && c.Name != existing.Name {
		updates["name"] = c.Name
	}
	if c.Email != "" && c.Email != existing.Email {
		updates["email"] = c.Email
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return false, err
		}
	}

	*c = existing
	return false, nil
}

func (r *CustomerGormRepository) RedeemPoints(
	ctx context.Context,
	businessID uint,
	customerID uint,
	points int,
) (*models.Customer, error) {

	var out models.Customer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND business_id = ?", customerID, businessID).
			First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("customer_not_found")
			}
			return err
		}

		res := tx.Model(&models.Customer{}).
			Where("id = ? AND loyalty_points >= ?", customerID, points).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points - ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("insufficient_points")
		}

		return tx.First(&out, customerID).Error
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

var _ customer.Repository = (*CustomerGormRepository)(nil)
