// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductUpdate lists the product fields that may be changed. Nil fields are left untouched.
// Quantity is deliberately absent: stock is not editable through an update.
type ProductUpdate struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
}

// IsEmpty reports whether the update carries no field.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Category == nil
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product and sets its ID.
	Create(ctx context.Context, product *entity.Product) error

	// List returns every product in store order.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Update applies the supplied fields and returns the updated product.
	Update(ctx context.Context, id string, update ProductUpdate) (*entity.Product, error)

	// Delete removes the product permanently.
	Delete(ctx context.Context, id string) error
}
