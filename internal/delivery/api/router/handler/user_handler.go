package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and cart handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest represents the request body for creating an account.
type RegisterUserRequest struct {
	LastName  string `json:"lastName" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateUserRequest represents the request body for editing an account.
type UpdateUserRequest struct {
	LastName  *string `json:"lastName"`
	FirstName *string `json:"firstName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// AddToCartRequest represents the request body for adding a product to a cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// RegisterUser handles account creation.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UserMessageResponse{
		Message: "User created successfully",
		User:    toUserResponse(user),
	})
}

// ListUsers handles retrieving every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// GetUser handles retrieving a single account.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles editing an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), c.Param("id"), &usecase.UpdateUserInput{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles removing an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}

// GetCart handles listing the products in a user's cart.
func (h *UserHandler) GetCart(c echo.Context) error {
	cart, err := h.userUC.GetCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{Cart: cart})
}

// AddToCart handles appending a product to a user's cart.
func (h *UserHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.userUC.AddToCart(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{Cart: cart})
}

// RemoveFromCart handles dropping a product from a user's cart.
func (h *UserHandler) RemoveFromCart(c echo.Context) error {
	cart, err := h.userUC.RemoveFromCart(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{Cart: cart})
}
