// Package gateway adapts the Midtrans Snap SDK to the core's PaymentGateway
// port. The call is treated as opaque: a transaction description goes in, a
// token and redirect URL come out, or an upstream error. No retries.
package gateway

import (
	"context"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// Snap item names are capped at 50 characters by the gateway.
const maxItemNameLen = 50

type SnapGateway struct {
	client snap.Client
}

// NewSnapGateway builds a Snap client for the given server key. production
// selects the live environment; everything else hits the sandbox.
func NewSnapGateway(serverKey string, production bool) *SnapGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var c snap.Client
	c.New(serverKey, env)
	return &SnapGateway{client: c}
}

// CreateTransaction implements ports.PaymentGateway.
func (g *SnapGateway) CreateTransaction(ctx context.Context, req ports.GatewayRequest) (*ports.GatewayResponse, error) {
	// The SDK carries its own HTTP timeout; a context already cancelled is
	// surfaced like any other upstream failure.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	items := make([]midtrans.ItemDetails, len(req.Items))
	for i, it := range req.Items {
		items[i] = midtrans.ItemDetails{
			ID:    it.ID,
			Name:  truncate(it.Name, maxItemNameLen),
			Price: it.Price,
			Qty:   int32(it.Quantity),
		}
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customer.FirstName,
			LName: req.Customer.LastName,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	}

	resp, err := g.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, err.Message)
	}

	return &ports.GatewayResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
