// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	ReviewHandler       *handler.ReviewHandler
	FavoriteHandler     *handler.FavoriteHandler
	AdminProductHandler *handler.AdminProductHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler      *handler.ProductHandler
	cartHandler         *handler.CartHandler
	checkoutHandler     *handler.CheckoutHandler
	orderHandler        *handler.OrderHandler
	reviewHandler       *handler.ReviewHandler
	favoriteHandler     *handler.FavoriteHandler
	adminProductHandler *handler.AdminProductHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:      params.ProductHandler,
		cartHandler:         params.CartHandler,
		checkoutHandler:     params.CheckoutHandler,
		orderHandler:        params.OrderHandler,
		reviewHandler:       params.ReviewHandler,
		favoriteHandler:     params.FavoriteHandler,
		adminProductHandler: params.AdminProductHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

func (r *router) metricsEnabled() bool {
	return r.metrics != nil && (r.config.Metrics == nil || r.config.Metrics.Enabled)
}

// RegisterMiddleware installs router-owned middleware that must wrap every route.
func (r *router) RegisterMiddleware(e *echo.Echo) {
	if r.metricsEnabled() {
		e.Use(r.metrics.Middleware())
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metricsEnabled() {
		e.GET("/metrics", r.metrics.Handler())
	}

	auth := r.authMiddleware.Authenticate

	// Embedded checkout
	e.POST("/api/payment", r.checkoutHandler.CreatePayment, auth)
	e.GET("/api/confirm", r.checkoutHandler.Confirm)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/featured", r.productHandler.ListFeatured)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/reviews", r.productHandler.ListReviews)
		productsGroup.GET("/:id/rating", r.productHandler.GetRating)
		productsGroup.GET("/:id/qr", r.productHandler.GetQRCode)
		productsGroup.GET("/:id/favorite", r.productHandler.GetFavorite, auth)
	}

	cartGroup := apiV1.Group("/cart", auth)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/count", r.cartHandler.CountItems)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	ordersGroup := apiV1.Group("/orders", auth)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
	}

	reviewsGroup := apiV1.Group("/reviews", auth)
	{
		reviewsGroup.POST("", r.reviewHandler.SubmitReview)
		reviewsGroup.GET("", r.reviewHandler.ListMyReviews)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	favoritesGroup := apiV1.Group("/favorites", auth)
	{
		favoritesGroup.POST("/toggle", r.favoriteHandler.ToggleFavorite)
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
	}

	// Admin routes require authentication and the configured admin id
	adminGroup := apiV1.Group("/admin", auth, r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/products", r.adminProductHandler.ListProducts)
		adminGroup.POST("/products", r.adminProductHandler.CreateProduct)
		adminGroup.GET("/products/:id", r.adminProductHandler.GetProduct)
		adminGroup.PUT("/products/:id", r.adminProductHandler.UpdateProduct)
		adminGroup.PUT("/products/:id/image", r.adminProductHandler.UpdateProductImage)
		adminGroup.DELETE("/products/:id", r.adminProductHandler.DeleteProduct)
		adminGroup.POST("/uploads", r.adminProductHandler.RequestUploadURL)
		adminGroup.GET("/orders", r.orderHandler.ListAllOrders)
	}
}
