package ports

import (
	"context"
	"encoding/json"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// ChargeItemInput is a client-submitted line item. Price and Quantity arrive
// as raw JSON numbers: values that fail to parse as integers are dropped by
// reconciliation rather than failing the whole request.
type ChargeItemInput struct {
	ID       string
	Name     string
	Price    json.Number
	Quantity json.Number
}

// CustomerInput holds optional customer contact details.
type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateChargeInput carries a transaction request into the payment service.
// OrderID uniqueness is the caller's responsibility.
type CreateChargeInput struct {
	OrderID       string
	Items         []ChargeItemInput
	Customer      *CustomerInput // nil → placeholder customer
	DiscountTotal int64          // non-negative; 0 = no separate discount
}

// ChargeResult is returned after the gateway accepts a reconciled charge.
type ChargeResult struct {
	Token       string
	RedirectURL string
	// ServerTotal is the reconciled gross amount actually authorized,
	// regardless of any total the client submitted.
	ServerTotal int64
}

// PaymentService creates gateway charges from reconciled transaction requests.
type PaymentService interface {
	CreateCharge(ctx context.Context, in CreateChargeInput) (*ChargeResult, error)
}

// GatewayRequest is the canonical transaction description sent to the payment
// gateway. Items always sum exactly to GrossAmount.
type GatewayRequest struct {
	OrderID     string
	GrossAmount int64
	Items       []domain.LineItem
	Customer    domain.Customer
}

// GatewayResponse is the opaque handle issued by the gateway.
type GatewayResponse struct {
	Token       string
	RedirectURL string
}

// PaymentGateway is the external collaborator that exchanges a transaction
// description for a payment token. Failures wrap domain.ErrUpstream; the core
// never retries.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, req GatewayRequest) (*GatewayResponse, error)
}
