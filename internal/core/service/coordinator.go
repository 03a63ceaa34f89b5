package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/indocart/pos-payments/internal/api/metrics"
	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// SessionCoordinator bridges the two checkout devices of the scan-to-pay
// flow. The phone registers order_id → token after the gateway issues a
// token; the PC polls by token until a terminal status appears; the gateway
// finish callback resolves which device-mode branch applies.
//
// All transitions funnel through this type so the one-shot delete-on-deliver
// and the device-mode branch live in exactly one place.
type SessionCoordinator struct {
	store ports.SessionStore
	log   zerolog.Logger
}

func NewSessionCoordinator(store ports.SessionStore, log zerolog.Logger) *SessionCoordinator {
	return &SessionCoordinator{store: store, log: log}
}

// Register stores the order_id → token correlation and seeds a pending
// status entry for token unless one already exists. Registration and the
// gateway confirmation race; seeding must not clobber a status the callback
// already wrote.
func (c *SessionCoordinator) Register(ctx context.Context, orderID, token string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	if token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrValidation)
	}

	if err := c.store.PutSession(ctx, orderID, token); err != nil {
		return err
	}
	_, exists, err := c.store.GetStatus(ctx, token)
	if err != nil {
		return err
	}
	if !exists {
		if err := c.store.UpsertStatus(ctx, token, domain.PendingEntry()); err != nil {
			return err
		}
	}

	metrics.QRSessionsRegisteredTotal.Inc()
	c.log.Info().Str("order_id", orderID).Msg("qr session registered")
	return nil
}

// Report overwrites the status entry for token unconditionally: last write
// wins against a concurrent gateway-finish callback, with no ordering
// guarantee. This is how the phone pushes its locally observed outcome.
func (c *SessionCoordinator) Report(ctx context.Context, token string, status domain.PaymentStatus, result map[string]any) error {
	if err := c.store.UpsertStatus(ctx, token, domain.StatusEntry{Status: status, Result: result}); err != nil {
		return err
	}
	metrics.QRStatusReportsTotal.WithLabelValues(string(status)).Inc()
	c.log.Info().Str("status", string(status)).Msg("qr status reported")
	return nil
}

// Finish handles the gateway's redirect callback for orderID.
//
// With an active session (QR mode) the corresponding token is marked success
// with a result tagged via gateway-finish, the session is deleted (one-shot),
// and the browser — which belongs to the phone — gets a neutral redirect.
// Without a session (single-device mode) nothing is mutated and the outcome
// flows back to the initiating device on the finish page.
func (c *SessionCoordinator) Finish(ctx context.Context, orderID, transactionStatus string) (*ports.FinishOutcome, error) {
	token, exists, err := c.store.GetSession(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &ports.FinishOutcome{
			Handoff:           false,
			OrderID:           orderID,
			TransactionStatus: transactionStatus,
		}, nil
	}

	entry := domain.StatusEntry{
		Status: domain.PaymentSuccess,
		Result: map[string]any{
			"order_id":           orderID,
			"transaction_status": transactionStatus,
			"via":                "gateway-finish",
		},
	}
	if err := c.store.UpsertStatus(ctx, token, entry); err != nil {
		return nil, err
	}
	if err := c.store.DeleteSession(ctx, orderID); err != nil {
		return nil, err
	}

	metrics.QRSessionsResolvedTotal.Inc()
	c.log.Info().
		Str("order_id", orderID).
		Str("transaction_status", transactionStatus).
		Msg("qr session resolved via gateway finish")

	return &ports.FinishOutcome{
		Handoff:           true,
		OrderID:           orderID,
		TransactionStatus: transactionStatus,
	}, nil
}

// Poll returns the current status entry for token. A token with no entry yet
// polls as pending — registration and gateway confirmation race, so a missing
// entry is never an error.
func (c *SessionCoordinator) Poll(ctx context.Context, token string) (domain.StatusEntry, error) {
	entry, exists, err := c.store.GetStatus(ctx, token)
	if err != nil {
		return domain.StatusEntry{}, err
	}
	if !exists {
		return domain.PendingEntry(), nil
	}
	return entry, nil
}
