package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

type stubCoordinator struct {
	registerFn func(ctx context.Context, orderID, token string) error
	reportFn   func(ctx context.Context, token string, status domain.PaymentStatus, result map[string]any) error
	finishFn   func(ctx context.Context, orderID, transactionStatus string) (*ports.FinishOutcome, error)
	pollFn     func(ctx context.Context, token string) (domain.StatusEntry, error)
}

func (s *stubCoordinator) Register(ctx context.Context, orderID, token string) error {
	return s.registerFn(ctx, orderID, token)
}

func (s *stubCoordinator) Report(ctx context.Context, token string, status domain.PaymentStatus, result map[string]any) error {
	return s.reportFn(ctx, token, status, result)
}

func (s *stubCoordinator) Finish(ctx context.Context, orderID, transactionStatus string) (*ports.FinishOutcome, error) {
	return s.finishFn(ctx, orderID, transactionStatus)
}

func (s *stubCoordinator) Poll(ctx context.Context, token string) (domain.StatusEntry, error) {
	return s.pollFn(ctx, token)
}

func TestQRHandler_RegisterSession(t *testing.T) {
	e := echo.New()
	stub := &stubCoordinator{
		registerFn: func(_ context.Context, orderID, token string) error {
			if orderID != "order-1" || token != "tok-1" {
				t.Fatalf("unexpected args: %s %s", orderID, token)
			}
			return nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local")

	body := strings.NewReader(`{"order_id":"order-1","token":"tok-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/sessions", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.RegisterSession(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestQRHandler_ReportStatus_NormalisesStatus(t *testing.T) {
	e := echo.New()
	var gotStatus domain.PaymentStatus
	stub := &stubCoordinator{
		reportFn: func(_ context.Context, token string, status domain.PaymentStatus, result map[string]any) error {
			gotStatus = status
			if result["gateway_code"] != "200" {
				t.Fatalf("result not forwarded: %+v", result)
			}
			return nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local")

	body := strings.NewReader(`{"token":"tok-1","status":" SUCCESS ","result":{"gateway_code":"200"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.ReportStatus(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotStatus != domain.PaymentSuccess {
		t.Fatalf("expected normalised success, got %q", gotStatus)
	}
}

func TestQRHandler_ReportStatus_EmptyStatusDefaultsToPending(t *testing.T) {
	e := echo.New()
	var gotStatus domain.PaymentStatus
	stub := &stubCoordinator{
		reportFn: func(_ context.Context, _ string, status domain.PaymentStatus, _ map[string]any) error {
			gotStatus = status
			return nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local")

	body := strings.NewReader(`{"token":"tok-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.ReportStatus(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotStatus != domain.PaymentPending {
		t.Fatalf("expected pending default, got %q", gotStatus)
	}
}

func TestQRHandler_PollStatus(t *testing.T) {
	e := echo.New()
	stub := &stubCoordinator{
		pollFn: func(_ context.Context, token string) (domain.StatusEntry, error) {
			if token != "tok-1" {
				t.Fatalf("unexpected token: %s", token)
			}
			return domain.StatusEntry{
				Status: domain.PaymentSuccess,
				Result: map[string]any{"order_id": "order-1"},
			}, nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr/status/tok-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("tok-1")

	if err := handler.PollStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success, got %q", resp.Status)
	}
	if resp.Result["order_id"] != "order-1" {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
}

func TestQRHandler_Finish_HandoffRedirectsToClosePage(t *testing.T) {
	e := echo.New()
	stub := &stubCoordinator{
		finishFn: func(_ context.Context, orderID, txStatus string) (*ports.FinishOutcome, error) {
			return &ports.FinishOutcome{Handoff: true, OrderID: orderID, TransactionStatus: txStatus}, nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local/")

	req := httptest.NewRequest(http.MethodGet, "/payments/finish?order_id=order-1&transaction_status=settlement", nil)
	rec := httptest.NewRecorder()

	if err := handler.Finish(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "http://pos.local/payment/close" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

func TestQRHandler_Finish_SingleDeviceCarriesOutcome(t *testing.T) {
	e := echo.New()
	stub := &stubCoordinator{
		finishFn: func(_ context.Context, orderID, txStatus string) (*ports.FinishOutcome, error) {
			return &ports.FinishOutcome{Handoff: false, OrderID: orderID, TransactionStatus: txStatus}, nil
		},
	}
	handler := NewQRHandler(stub, "http://pos.local")

	req := httptest.NewRequest(http.MethodGet, "/payments/finish?order_id=order-9&transaction_status=settlement", nil)
	rec := httptest.NewRecorder()

	if err := handler.Finish(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	loc := rec.Header().Get(echo.HeaderLocation)
	if !strings.HasPrefix(loc, "http://pos.local/payment/finish?") {
		t.Fatalf("unexpected redirect: %s", loc)
	}
	if !strings.Contains(loc, "order_id=order-9") || !strings.Contains(loc, "transaction_status=settlement") {
		t.Fatalf("outcome missing from redirect: %s", loc)
	}
}
