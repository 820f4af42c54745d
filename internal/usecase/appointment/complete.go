package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, audit: audit}
}

type CompleteResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	PointsEarned int                 `json:"points_earned"`
}

// Execute marks the appointment done and credits the customer with loyalty
// points for the service price.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	businessID uint,
	staffID uint,
	appointmentID uint,
) (*CompleteResult, error) {

	business, ap, err := loadOwned(ctx, uc.repo, businessID, staffID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, timezone.NowIn(business.Timezone)); err != nil {
		return nil, err
	}

	points := domain.LoyaltyPoints(ap.Service.Price, business.LoyaltyPointsPerUnit)

	if err := uc.repo.SaveCompleted(ctx, ap, points); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &staffID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata:   map[string]any{"points": points},
	})

	return &CompleteResult{Appointment: ap, PointsEarned: points}, nil
}
