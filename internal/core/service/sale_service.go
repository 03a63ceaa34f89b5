package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// SaleService records completed sales in the ledger. The stored total is
// recomputed from the submitted items with the same bounds the charge path
// applies; the client never dictates it.
type SaleService struct {
	repo ports.SaleRepository
	log  zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, log zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, log: log}
}

func (s *SaleService) Record(ctx context.Context, in ports.RecordSaleInput) (*domain.Sale, error) {
	if in.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", domain.ErrValidation)
	}

	var total int64
	items := make([]domain.SaleItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.Quantity <= 0 || it.Quantity > domain.MaxItemQuantity {
			return nil, fmt.Errorf("%w: items[%d] quantity out of range", domain.ErrValidation, i)
		}
		if it.Price < 0 || it.Price > domain.MaxItemPrice {
			return nil, fmt.Errorf("%w: items[%d] price out of range", domain.ErrValidation, i)
		}
		items = append(items, domain.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
		total += it.Price * it.Quantity
	}

	method := in.PaymentMethod
	if method == "" {
		method = "cash"
	}

	sale := &domain.Sale{
		OrderID:       in.OrderID,
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		CashierID:     in.CashierID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, sale)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", created.OrderID).
		Int64("total", created.Total).
		Str("cashier_id", created.CashierID).
		Msg("sale recorded")
	return created, nil
}

func (s *SaleService) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.repo.List(ctx)
}
