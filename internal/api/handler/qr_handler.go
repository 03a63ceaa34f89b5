package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// QRHandler exposes the scan-to-pay handoff: the phone registers and reports,
// the PC polls, and the gateway redirect callback lands on Finish.
type QRHandler struct {
	coordinator ports.SessionCoordinator
	frontendURL string
}

func NewQRHandler(coordinator ports.SessionCoordinator, frontendBaseURL string) *QRHandler {
	return &QRHandler{
		coordinator: coordinator,
		frontendURL: strings.TrimRight(frontendBaseURL, "/"),
	}
}

type registerSessionRequest struct {
	OrderID string `json:"order_id"`
	Token   string `json:"token"`
}

type reportStatusRequest struct {
	Token  string         `json:"token"`
	Status string         `json:"status"`
	Result map[string]any `json:"result"`
}

type statusResponse struct {
	Status string         `json:"status"`
	Result map[string]any `json:"result"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// RegisterSession handles POST /api/v1/qr/sessions — the phone-mode client
// correlates its order_id with the gateway token it just obtained.
//
// @Summary      Register a scan-to-pay session
// @Tags         qr
// @Accept       json
// @Produce      json
// @Param        body  body      registerSessionRequest  true  "Session correlation"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/qr/sessions [post]
func (h *QRHandler) RegisterSession(c echo.Context) error {
	var req registerSessionRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}

	if err := h.coordinator.Register(c.Request().Context(), req.OrderID, req.Token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ReportStatus handles POST /api/v1/qr/status — the phone pushes the outcome
// it observed locally. An idempotent upsert: last write wins, and the
// endpoint always answers success.
//
// @Summary      Report a payment status observed by the device
// @Tags         qr
// @Accept       json
// @Produce      json
// @Param        body  body      reportStatusRequest  true  "Observed status"
// @Success      200   {object}  successResponse
// @Router       /api/v1/qr/status [post]
func (h *QRHandler) ReportStatus(c echo.Context) error {
	var req reportStatusRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}

	status := domain.PaymentStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = domain.PaymentPending
	}

	if err := h.coordinator.Report(c.Request().Context(), req.Token, status, req.Result); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// PollStatus handles GET /api/v1/qr/status/:token — the PC side polls until a
// terminal status appears. A token with no entry yet answers pending, never
// an error: registration and gateway confirmation race.
//
// @Summary      Poll the status of a payment token
// @Tags         qr
// @Produce      json
// @Param        token  path      string  true  "Payment token"
// @Success      200    {object}  statusResponse
// @Router       /api/v1/qr/status/{token} [get]
func (h *QRHandler) PollStatus(c echo.Context) error {
	entry, err := h.coordinator.Poll(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{
		Status: string(entry.Status),
		Result: entry.Result,
	})
}

// Finish handles GET /payments/finish — the gateway's hosted page redirects
// the paying browser here. With an active session the browser belongs to the
// phone and gets a neutral close page; without one, the initiating device
// gets the outcome on the finish page directly.
//
// @Summary      Gateway finish redirect callback
// @Tags         qr
// @Param        order_id            query  string  true  "Order identifier"
// @Param        transaction_status  query  string  true  "Gateway transaction status"
// @Success      302
// @Router       /payments/finish [get]
func (h *QRHandler) Finish(c echo.Context) error {
	orderID := c.QueryParam("order_id")
	txStatus := c.QueryParam("transaction_status")

	outcome, err := h.coordinator.Finish(c.Request().Context(), orderID, txStatus)
	if err != nil {
		return err
	}

	if outcome.Handoff {
		return c.Redirect(http.StatusFound, h.frontendURL+"/payment/close")
	}

	q := url.Values{}
	q.Set("order_id", outcome.OrderID)
	q.Set("transaction_status", outcome.TransactionStatus)
	return c.Redirect(http.StatusFound, h.frontendURL+"/payment/finish?"+q.Encode())
}
