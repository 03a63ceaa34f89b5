package ports

import (
	"context"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// ProductInput carries the writable fields of a catalog entry.
type ProductInput struct {
	SKU      string
	Name     string
	Price    int64
	Stock    int64
	Category string
	ImageURL string
}

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

// SaleItemInput is a line of a recorded sale.
type SaleItemInput struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int64
}

// RecordSaleInput carries a completed sale into the ledger.
type RecordSaleInput struct {
	OrderID       string
	Items         []SaleItemInput
	PaymentMethod string
	CashierID     string
}

// SaleRepository defines persistence operations for the sales ledger.
type SaleRepository interface {
	Insert(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}

// SaleService records and lists completed sales. Totals are recomputed from
// the submitted items, never taken from the client.
type SaleService interface {
	Record(ctx context.Context, in RecordSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}
