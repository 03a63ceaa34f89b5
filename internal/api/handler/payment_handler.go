package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// PaymentHandler handles charge creation against the payment gateway.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateCharge handles POST /api/v1/charges.
//
// @Summary      Create a gateway charge from a transaction request
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChargeRequest  true  "Transaction request"
// @Success      200   {object}  chargeResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Failure      502   {object}  map[string]any
// @Router       /api/v1/charges [post]
func (h *PaymentHandler) CreateCharge(c echo.Context) error {
	return h.charge(c)
}

// LegacySnapToken handles POST /api/v1/snap/token, the request shape older
// POS clients still send. The endpoint used to forward the client-declared
// gross_amount straight to the gateway; it now runs the same reconciling
// pipeline as CreateCharge and only the endpoint shape survives.
//
// @Summary      Create a gateway charge (legacy endpoint shape)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChargeRequest  true  "Transaction request"
// @Success      200   {object}  chargeResponse
// @Router       /api/v1/snap/token [post]
func (h *PaymentHandler) LegacySnapToken(c echo.Context) error {
	return h.charge(c)
}

func (h *PaymentHandler) charge(c echo.Context) error {
	var req createChargeRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	result, err := h.service.CreateCharge(c.Request().Context(), toChargeInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chargeResponse{
		Success:     true,
		Token:       result.Token,
		RedirectURL: result.RedirectURL,
		ServerTotal: result.ServerTotal,
	})
}

// toChargeInput maps the HTTP request to the service DTO.
func toChargeInput(req createChargeRequest) ports.CreateChargeInput {
	in := ports.CreateChargeInput{
		OrderID:       req.OrderID,
		DiscountTotal: req.DiscountTotal,
		Items:         make([]ports.ChargeItemInput, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, ports.ChargeItemInput{
			ID:       it.ID,
			Name:     it.Name,
			Price:    json.Number(it.Price),
			Quantity: json.Number(it.Quantity),
		})
	}
	if req.Customer != nil {
		in.Customer = &ports.CustomerInput{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		}
	}
	return in
}
