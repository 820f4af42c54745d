package customer

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/customer"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Customers struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCustomers(repo domain.Repository, audit *audit.Dispatcher) *Customers {
	return &Customers{repo: repo, audit: audit}
}

func (uc *Customers) List(ctx context.Context, businessID uint, query string) ([]models.Customer, error) {
	return uc.repo.List(ctx, businessID, query)
}

// Redeem spends loyalty points of a customer.
func (uc *Customers) Redeem(
	ctx context.Context,
	businessID uint,
	actorID uint,
	customerID uint,
	points int,
) (*models.Customer, error) {

	if points <= 0 {
		return nil, httperr.ErrBusiness("invalid_points")
	}

	c, err := uc.repo.RedeemPoints(ctx, businessID, customerID, points)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &actorID,
		Action:     "loyalty_redeemed",
		Entity:     "customer",
		EntityID:   &c.ID,
		Metadata:   map[string]any{"points": points},
	})

	return c, nil
}
