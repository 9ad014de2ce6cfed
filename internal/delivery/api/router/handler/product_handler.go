package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalogue handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Quantity *int             `json:"quantity" validate:"required"`
}

// UpdateProductRequest represents the request body for editing a product.
// Quantity is not editable through this endpoint.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

// CreateProduct handles adding a product to the catalogue.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:     req.Name,
		Price:    *req.Price,
		Category: req.Category,
		Quantity: *req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreatedProductResponse{
		Message: "Product created successfully",
		Product: toProductResponse(product),
	})
}

// ListProducts handles retrieving the whole catalogue.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// GetProduct handles retrieving a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles editing a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("id"), &usecase.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles removing a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// ExportProducts streams the catalogue as a spreadsheet attachment.
func (h *ProductHandler) ExportProducts(c echo.Context) error {
	var buf bytes.Buffer
	file, err := h.productUC.ExportProducts(c.Request().Context(), &buf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)

	return c.Blob(http.StatusOK, file.ContentType, buf.Bytes())
}
