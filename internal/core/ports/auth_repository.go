package ports

import (
	"context"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// AuthRepository defines the interface for operator account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
