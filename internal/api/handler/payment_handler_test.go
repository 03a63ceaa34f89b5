package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

type stubPaymentService struct {
	createFn func(ctx context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error)
	calls    int
}

func (s *stubPaymentService) CreateCharge(ctx context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error) {
	s.calls++
	return s.createFn(ctx, in)
}

func chargeContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charges", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_CreateCharge_Success(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(_ context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error) {
			if in.OrderID != "order-1" || len(in.Items) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ChargeResult{Token: "tok-1", RedirectURL: "https://gw/pay", ServerTotal: 36000}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, rec := chargeContext(t, `{
		"order_id": "order-1",
		"gross_amount": 999999,
		"item_details": [{"id":"SKU-1","name":"Kopi susu","price":18000,"quantity":2}]
	}`)
	if err := handler.CreateCharge(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp chargeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Token != "tok-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	// The client-declared gross_amount never reaches the response: the
	// reconciled server total does.
	if resp.ServerTotal != 36000 {
		t.Fatalf("expected server total 36000, got %d", resp.ServerTotal)
	}
}

func TestPaymentHandler_CreateCharge_MissingOrderID(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(_ context.Context, _ ports.CreateChargeInput) (*ports.ChargeResult, error) {
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := chargeContext(t, `{"item_details":[{"id":"SKU-1","price":100,"quantity":1}]}`)
	err := handler.CreateCharge(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatal("service must not be called when validation fails")
	}
}

func TestPaymentHandler_CreateCharge_EmptyItems(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(_ context.Context, _ ports.CreateChargeInput) (*ports.ChargeResult, error) {
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := chargeContext(t, `{"order_id":"order-1","item_details":[]}`)
	if err := handler.CreateCharge(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPaymentHandler_CreateCharge_NonNumericPriceStillBinds(t *testing.T) {
	var got ports.CreateChargeInput
	stub := &stubPaymentService{
		createFn: func(_ context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error) {
			got = in
			return &ports.ChargeResult{Token: "tok-1"}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	// A string price must not fail binding; the service layer decides what
	// to drop.
	c, _ := chargeContext(t, `{
		"order_id": "order-1",
		"item_details": [{"id":"SKU-1","price":"abc","quantity":1}]
	}`)
	if err := handler.CreateCharge(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Items[0].Price.String() != "abc" {
		t.Fatalf("raw price not forwarded: %+v", got.Items[0])
	}
}

func TestPaymentHandler_CreateCharge_UpstreamError(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(_ context.Context, _ ports.CreateChargeInput) (*ports.ChargeResult, error) {
			return nil, domain.ErrUpstream
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := chargeContext(t, `{"order_id":"order-1","item_details":[{"id":"A","price":100,"quantity":1}]}`)
	if err := handler.CreateCharge(c); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestPaymentHandler_LegacySnapToken_SharesPipeline(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(_ context.Context, in ports.CreateChargeInput) (*ports.ChargeResult, error) {
			return &ports.ChargeResult{Token: "tok-legacy", ServerTotal: 100}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, rec := chargeContext(t, `{"order_id":"order-1","item_details":[{"id":"A","price":100,"quantity":1}]}`)
	if err := handler.LegacySnapToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp chargeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok-legacy" || resp.ServerTotal != 100 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
