package payment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// GetAppointment loads the appointment with its service and customer.
	GetAppointment(
		ctx context.Context,
		businessID uint,
		staffID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// SaveCharge stores p and links it to ap in one transaction.
	SaveCharge(
		ctx context.Context,
		ap *models.Appointment,
		p *models.Payment,
	) error
}

type ChargeRequest struct {
	Amount          float64
	Token           string
	PaymentMethodID string
	Installments    int
	PayerEmail      string
	Description     string
	ExternalRef     string

	// IdempotencyKey is stable for one card token on one appointment, so a
	// replayed request is answered with the payment already created.
	IdempotencyKey string
}

type ChargeResult struct {
	ProviderID string
	Status     string
}

// Gateway is the card processor.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// LockKey serializes charges of one appointment.
func LockKey(appointmentID uint) string {
	return fmt.Sprintf("booking:payment:%d", appointmentID)
}
