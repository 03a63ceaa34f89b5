package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// ProductHandler handles catalog CRUD. Reads are public; writes are gated by
// the owner/admin role set in the router.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	SKU      string `json:"sku"      validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Price    int64  `json:"price"    validate:"gte=0"`
	Stock    int64  `json:"stock"    validate:"gte=0"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type productResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product,omitempty"`
}

type productListResponse struct {
	Success  bool              `json:"success"`
	Products []*domain.Product `json:"products"`
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return c.JSON(http.StatusOK, productListResponse{Success: true, Products: products})
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Success: true, Product: product})
}

func (h *ProductHandler) Create(c echo.Context) error {
	in, err := bindProduct(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productResponse{Success: true, Product: product})
}

func (h *ProductHandler) Update(c echo.Context) error {
	in, err := bindProduct(c)
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Success: true, Product: product})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func bindProduct(c echo.Context) (ports.ProductInput, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return ports.ProductInput{}, fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return ports.ProductInput{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return ports.ProductInput{
		SKU:      req.SKU,
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}, nil
}
