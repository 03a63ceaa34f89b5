package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub product repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID map[string]*domain.Product
	seq  int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.seq++
	stored := cloneProduct(p)
	stored.ID = "prod-" + strconv.Itoa(r.seq)
	r.byID[stored.ID] = stored
	return cloneProduct(stored), nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[id]; !ok {
		return nil, domain.ErrProductNotFound
	}
	stored := cloneProduct(p)
	stored.ID = id
	r.byID[id] = stored
	return cloneProduct(stored), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func productInput(name string, price int64) ports.ProductInput {
	return ports.ProductInput{SKU: "SKU-1", Name: name, Price: price, Stock: 10, Category: "drinks"}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductService_Create_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	p, err := svc.Create(context.Background(), productInput("Kopi susu", 18000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected persisted ID")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	ctx := context.Background()

	cases := []ports.ProductInput{
		productInput("", 100),                           // no name
		productInput("Teh", -1),                         // negative price
		productInput("Teh", domain.MaxItemPrice+1),      // price beyond bound
		{SKU: "S", Name: "Teh", Price: 100, Stock: -5},  // negative stock
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestProductService_Update_MissingProduct(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	_, err := svc.Update(context.Background(), "missing", productInput("Teh", 100))
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_OverwritesFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, productInput("Kopi susu", 18000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, productInput("Kopi susu besar", 22000))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Kopi susu besar" || updated.Price != 22000 {
		t.Errorf("fields not updated: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestProductService_Delete_ThenGetFails(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, productInput("Kopi susu", 18000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
