package repository

import (
	"context"

	"shop/internal/domain/entity"
)

// UserUpdate lists the user fields that may be changed. Nil fields are left untouched.
// PasswordHash must already be a digest.
type UserUpdate struct {
	LastName     *string
	FirstName    *string
	Phone        *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no field.
func (u UserUpdate) IsEmpty() bool {
	return u.LastName == nil && u.FirstName == nil && u.Phone == nil &&
		u.Email == nil && u.PasswordHash == nil
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and sets its ID and timestamps.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// List returns every user in store order.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update applies the supplied fields and returns the updated user.
	Update(ctx context.Context, id string, update UserUpdate) (*entity.User, error)

	// Delete removes the user permanently.
	Delete(ctx context.Context, id string) error

	// AddToCart appends a product reference to the user's cart and returns the new cart.
	AddToCart(ctx context.Context, id, productID string) ([]string, error)

	// RemoveFromCart drops every occurrence of a product reference and returns the new cart.
	RemoveFromCart(ctx context.Context, id, productID string) ([]string, error)
}
