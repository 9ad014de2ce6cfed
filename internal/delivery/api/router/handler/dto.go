package handler

import (
	"time"

	"shop/internal/domain/entity"
)

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.InexactFloat64(),
		Category: p.Category,
		Quantity: p.Quantity,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	ID        string    `json:"_id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Cart      []string  `json:"cart"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	cart := u.Cart
	if cart == nil {
		cart = []string{}
	}

	return &UserResponse{
		ID:        u.ID,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Phone:     u.Phone,
		Email:     u.Email,
		Cart:      cart,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// CreatedProductResponse acknowledges a new product.
type CreatedProductResponse struct {
	Message string           `json:"message"`
	Product *ProductResponse `json:"product"`
}

// UserMessageResponse pairs a message with the affected account.
type UserMessageResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// CartResponse lists the product IDs in a cart, in insertion order.
type CartResponse struct {
	Cart []string `json:"cart"`
}
