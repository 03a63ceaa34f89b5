package ports

import (
	"context"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// SessionStore holds the two ephemeral scan-to-pay maps: order_id → token
// (the session) and token → status entry. The default backing is an
// in-process map; a Redis implementation exists for multi-instance
// deployments. Implementations guarantee per-operation atomicity only —
// last write wins between racing writers, by design.
type SessionStore interface {
	PutSession(ctx context.Context, orderID, token string) error
	// GetSession returns the token registered for orderID, if any.
	GetSession(ctx context.Context, orderID string) (string, bool, error)
	DeleteSession(ctx context.Context, orderID string) error

	// UpsertStatus overwrites the status entry for token unconditionally.
	UpsertStatus(ctx context.Context, token string, entry domain.StatusEntry) error
	GetStatus(ctx context.Context, token string) (domain.StatusEntry, bool, error)
}

// FinishOutcome tells the transport layer which device-mode branch the
// gateway finish callback took.
type FinishOutcome struct {
	// Handoff is true when a registered session consumed the outcome
	// (QR mode): the browser gets a neutral redirect and the PC learns the
	// result by polling. When false the initiating device receives the
	// outcome directly on the finish page.
	Handoff           bool
	OrderID           string
	TransactionStatus string
}

// SessionCoordinator is the state machine bridging the two checkout devices.
type SessionCoordinator interface {
	// Register creates the order_id → token correlation after the phone-mode
	// client obtains a gateway token.
	Register(ctx context.Context, orderID, token string) error
	// Report upserts the status entry for token; it always succeeds.
	Report(ctx context.Context, token string, status domain.PaymentStatus, result map[string]any) error
	// Finish handles the gateway redirect callback and resolves the
	// device-mode branch.
	Finish(ctx context.Context, orderID, transactionStatus string) (*FinishOutcome, error)
	// Poll returns the current entry for token, pending when none exists.
	Poll(ctx context.Context, token string) (domain.StatusEntry, error)
}
