// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a product.
type CreateProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
	Quantity int
}

// UpdateProductInput lists the editable product fields. Nil means "keep".
type UpdateProductInput struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
}

// ProductUsecase defines the catalogue operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// ExportProducts writes the whole catalogue as a spreadsheet to w.
	ExportProducts(ctx context.Context, w io.Writer) (*ExportedFile, error)
}

// ExportedFile describes a document written by an export.
type ExportedFile struct {
	FileName    string
	ContentType string
}
