package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/indocart/pos-payments/internal/api/metrics"
	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// PaymentService reconciles transaction requests and creates gateway charges.
type PaymentService struct {
	gateway ports.PaymentGateway
	log     zerolog.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, log zerolog.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, log: log}
}

// CreateCharge validates the request, recomputes the total from the line
// items, and asks the gateway for a payment token. No gateway call is made
// when validation fails, and the client-submitted total is never forwarded.
func (s *PaymentService) CreateCharge(ctx context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error) {
	if in.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: item_details must not be empty", domain.ErrValidation)
	}
	if in.DiscountTotal < 0 {
		return nil, fmt.Errorf("%w: discount_total must not be negative", domain.ErrValidation)
	}

	items, total, skipped := reconcile(in.Items, in.DiscountTotal)
	if skipped > 0 {
		metrics.ReconcileItemsSkippedTotal.Add(float64(skipped))
		s.log.Warn().
			Str("order_id", in.OrderID).
			Int("skipped", skipped).
			Msg("dropped invalid line items during reconciliation")
	}

	resp, err := s.gateway.CreateTransaction(ctx, ports.GatewayRequest{
		OrderID:     in.OrderID,
		GrossAmount: total,
		Items:       items,
		Customer:    customerOrDefault(in.Customer),
	})
	if err != nil {
		metrics.ChargeErrorsTotal.WithLabelValues("gateway").Inc()
		s.log.Error().Err(err).Str("order_id", in.OrderID).Msg("gateway transaction failed")
		return nil, err
	}

	metrics.ChargesCreatedTotal.Inc()
	s.log.Info().
		Str("order_id", in.OrderID).
		Int64("server_total", total).
		Msg("charge created")

	return &ports.ChargeResult{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
		ServerTotal: total,
	}, nil
}

// customerOrDefault substitutes the placeholder customer when the request
// carried none. All entry points default through here.
func customerOrDefault(c *ports.CustomerInput) domain.Customer {
	if c == nil || (c.FirstName == "" && c.Email == "" && c.Phone == "") {
		return domain.DefaultCustomer()
	}
	out := domain.Customer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
	if out.FirstName == "" {
		out.FirstName = "Customer"
	}
	return out
}
