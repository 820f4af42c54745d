package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/hours"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type HoursGormRepository struct {
	db *gorm.DB
}

func NewHoursGormRepository(db *gorm.DB) *HoursGormRepository {
	return &HoursGormRepository{db: db}
}

func (r *HoursGormRepository) ListWeek(
	ctx context.Context,
	staffID uint,
) ([]models.WorkingHours, []models.BreakInterval, error) {

	var wh []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&wh).Error; err != nil {
		return nil, nil, err
	}

	var breaks []models.BreakInterval
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {
		return nil, nil, err
	}

	return wh, breaks, nil
}

func (r *HoursGormRepository) ReplaceWeek(
	ctx context.Context,
	staffID uint,
	wh []models.WorkingHours,
	breaks []models.BreakInterval,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.BreakInterval{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(wh) > 0 {
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		if len(breaks) > 0 {
			if err := tx.Create(&breaks).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *HoursGormRepository) ListSpecialDates(
	ctx context.Context,
	staffID uint,
	from string,
	to string,
) ([]models.SpecialDate, error) {

	q := r.db.WithContext(ctx).Where("staff_id = ?", staffID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var out []models.SpecialDate
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HoursGormRepository) UpsertSpecialDate(
	ctx context.Context,
	sd *models.SpecialDate,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"closed", "start_time", "end_time", "note", "updated_at"}),
		}).
		Create(sd).Error
}

func (r *HoursGormRepository) DeleteSpecialDate(
	ctx context.Context,
	staffID uint,
	date string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("staff_id = ? AND date = ?", staffID, date).
		Delete(&models.SpecialDate{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ hours.Repository = (*HoursGormRepository)(nil)
