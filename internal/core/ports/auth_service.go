package ports

import (
	"context"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// AuthService registers operator accounts and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
