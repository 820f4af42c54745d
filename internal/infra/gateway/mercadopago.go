package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
)

const idempotencyHeader = "X-Idempotency-Key"

type idempotencyCtxKey struct{}

// keyedRequester replaces the per-request random idempotency key of the SDK
// with the one carried by the request context.
type keyedRequester struct {
	client *http.Client
}

func (r keyedRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyCtxKey{}).(string); ok && key != "" {
		req.Header.Set(idempotencyHeader, key)
	}
	return r.client.Do(req)
}

type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(
		accessToken,
		mpconfig.WithHTTPClient(keyedRequester{client: &http.Client{Timeout: 30 * time.Second}}),
	)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	installments := req.Installments
	if installments <= 0 {
		installments = 1
	}

	if req.IdempotencyKey != "" {
		ctx = context.WithValue(ctx, idempotencyCtxKey{}, req.IdempotencyKey)
	}

	res, err := m.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Token:             req.Token,
		PaymentMethodID:   req.PaymentMethodID,
		Installments:      installments,
		Description:       req.Description,
		ExternalReference: req.ExternalRef,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	return &domain.ChargeResult{
		ProviderID: fmt.Sprintf("%d", res.ID),
		Status:     res.Status,
	}, nil
}

var _ domain.Gateway = (*MercadoPago)(nil)
