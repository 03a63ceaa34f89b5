package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// ProductService implements catalog use cases.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Product{
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("sku", created.SKU).Str("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.SKU = in.SKU
	existing.Name = in.Name
	existing.Price = in.Price
	existing.Stock = in.Stock
	existing.Category = in.Category
	existing.ImageURL = in.ImageURL
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, existing)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func validateProductInput(in ports.ProductInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Price < 0 || in.Price > domain.MaxItemPrice {
		return fmt.Errorf("%w: price out of range", domain.ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}
