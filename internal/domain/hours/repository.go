package hours

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	ListWeek(
		ctx context.Context,
		staffID uint,
	) ([]models.WorkingHours, []models.BreakInterval, error)

	// ReplaceWeek swaps every weekday row and break of staffID atomically.
	ReplaceWeek(
		ctx context.Context,
		staffID uint,
		hours []models.WorkingHours,
		breaks []models.BreakInterval,
	) error

	// ListSpecialDates returns overrides with from <= date <= to. Empty bounds
	// are open.
	ListSpecialDates(
		ctx context.Context,
		staffID uint,
		from string,
		to string,
	) ([]models.SpecialDate, error)

	UpsertSpecialDate(
		ctx context.Context,
		sd *models.SpecialDate,
	) error

	// DeleteSpecialDate reports whether a row was removed.
	DeleteSpecialDate(
		ctx context.Context,
		staffID uint,
		date string,
	) (bool, error)
}
