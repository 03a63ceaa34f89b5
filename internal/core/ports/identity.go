package ports

import (
	"context"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// TokenVerifier validates an opaque bearer credential against the identity
// provider and produces the caller's claims. The core never inspects the
// credential itself.
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (domain.Identity, error)
}

// RoleStore is the external key-value store holding subject_id → role.
// Lookup returns domain.ErrForbidden when no record exists for the subject.
type RoleStore interface {
	RoleOf(ctx context.Context, subjectID string) (string, error)
	SetRole(ctx context.Context, subjectID, role string) error
}
