package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to create an account. Every field is required.
type RegisterUserInput struct {
	LastName  string
	FirstName string
	Phone     string
	Email     string
	Password  string
}

// UpdateUserInput lists the editable user fields. Nil means "keep".
// A new Password is hashed before storage.
type UpdateUserInput struct {
	LastName  *string
	FirstName *string
	Phone     *string
	Email     *string
	Password  *string
}

// UserUsecase defines the account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error

	GetCart(ctx context.Context, userID string) ([]string, error)
	AddToCart(ctx context.Context, userID, productID string) ([]string, error)
	RemoveFromCart(ctx context.Context, userID, productID string) ([]string, error)
}
