package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// SaleHandler records and lists entries in the sales ledger.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type saleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Price     int64  `json:"price"      validate:"gte=0"`
	Quantity  int64  `json:"quantity"   validate:"gt=0"`
}

type recordSaleRequest struct {
	OrderID       string            `json:"order_id"       validate:"required"`
	Items         []saleItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method"`
}

type saleResponse struct {
	Success bool         `json:"success"`
	Sale    *domain.Sale `json:"sale,omitempty"`
}

type saleListResponse struct {
	Success bool           `json:"success"`
	Sales   []*domain.Sale `json:"sales"`
}

// Record handles POST /api/v1/sales. The cashier is taken from the verified
// identity, never from the body.
func (h *SaleHandler) Record(c echo.Context) error {
	var req recordSaleRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	in := ports.RecordSaleInput{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		CashierID:     identity.SubjectID,
		Items:         make([]ports.SaleItemInput, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, ports.SaleItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	sale, err := h.service.Record(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saleResponse{Success: true, Sale: sale})
}

// List handles GET /api/v1/sales, newest first.
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if sales == nil {
		sales = []*domain.Sale{}
	}
	return c.JSON(http.StatusOK, saleListResponse{Success: true, Sales: sales})
}
