package customer

import (
	"context"
	"io"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	List(
		ctx context.Context,
		businessID uint,
		query string,
	) ([]models.Customer, error)

	// UpsertByPhone creates the customer or refreshes name and email of the
	// one already holding the phone.
	UpsertByPhone(
		ctx context.Context,
		c *models.Customer,
	) (created bool, err error)

	// RedeemPoints fails with the business error insufficient_points when the
	// balance is lower than points.
	RedeemPoints(
		ctx context.Context,
		businessID uint,
		customerID uint,
		points int,
	) (*models.Customer, error)
}

// ObjectStore fetches uploaded import files.
type ObjectStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}
