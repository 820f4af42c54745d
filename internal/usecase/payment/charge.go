package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ChargeInput struct {
	BusinessID    uint
	StaffID       uint
	AppointmentID uint

	Token           string
	PaymentMethodID string
	Installments    int
	PayerEmail      string
}

type Charge struct {
	repo    domain.Repository
	gateway domain.Gateway
	locker  appointment.Locker
	audit   *audit.Dispatcher
	log     *zap.Logger
}

// NewCharge accepts a nil gateway when payments are not configured.
func NewCharge(
	repo domain.Repository,
	gateway domain.Gateway,
	locker appointment.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Charge {
	return &Charge{repo: repo, gateway: gateway, locker: locker, audit: audit, log: log}
}

func (uc *Charge) Execute(ctx context.Context, in ChargeInput) (*models.Payment, error) {
	if uc.gateway == nil {
		return nil, httperr.ErrBusiness("payments_unavailable")
	}

	release, err := uc.locker.Acquire(ctx, domain.LockKey(in.AppointmentID))
	if err != nil {
		uc.log.Warn("payment lock unavailable", zap.Uint("appointment_id", in.AppointmentID), zap.Error(err))
		return nil, httperr.ErrBusiness("payment_in_progress")
	}
	defer release()

	ap, err := uc.repo.GetAppointment(ctx, in.BusinessID, in.StaffID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Only a rejected charge may be retried.
	switch {
	case ap.PaymentStatus == models.PaymentStatusApproved:
		return nil, httperr.ErrBusiness("already_paid")
	case ap.PaymentStatus == models.PaymentStatusPending:
		return nil, httperr.ErrBusiness("payment_pending")
	case ap.Status == string(appointment.StatusCancelled):
		return nil, httperr.ErrBusiness("invalid_state")
	case ap.Service.Price <= 0:
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	payer := in.PayerEmail
	if payer == "" {
		payer = ap.Customer.Email
	}

	ref := fmt.Sprintf("appointment-%d", ap.ID)

	res, err := uc.gateway.Charge(ctx, domain.ChargeRequest{
		Amount:          ap.Service.Price,
		Token:           in.Token,
		PaymentMethodID: in.PaymentMethodID,
		Installments:    in.Installments,
		PayerEmail:      payer,
		Description:     ap.Service.Name,
		ExternalRef:     ref,
		IdempotencyKey:  idempotencyKey(ref, in.Token),
	})
	if err != nil {
		uc.log.Error("payment provider failed",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness("payment_failed")
	}

	p := &models.Payment{
		AppointmentID: ap.ID,
		BusinessID:    in.BusinessID,
		ProviderID:    res.ProviderID,
		Status:        paymentStatus(res.Status),
		Amount:        ap.Service.Price,
		Method:        in.PaymentMethodID,
	}

	if err := uc.repo.SaveCharge(ctx, ap, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     &in.StaffID,
		Action:     "appointment_charged",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"payment_id":  p.ID,
			"provider_id": p.ProviderID,
			"status":      p.Status,
			"amount":      p.Amount,
		},
	})

	return p, nil
}

func idempotencyKey(ref, token string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(ref+"|"+token)).String()
}

// paymentStatus folds provider statuses into the three the agenda shows.
func paymentStatus(provider string) string {
	switch provider {
	case "approved", "authorized":
		return models.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return models.PaymentStatusRejected
	default:
		return models.PaymentStatusPending
	}
}
