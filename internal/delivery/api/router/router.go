// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	productsGroup := api.Group("/produits")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/export", r.productHandler.ExportProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)

		usersGroup.GET("/:id/cart", r.userHandler.GetCart)
		usersGroup.POST("/:id/cart", r.userHandler.AddToCart)
		usersGroup.DELETE("/:id/cart/:productId", r.userHandler.RemoveFromCart)
	}

	api.POST("/login", r.authHandler.Login)
}
