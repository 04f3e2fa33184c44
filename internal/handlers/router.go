package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/logger"
	"bakery_storefront/internal/metrics"
	"bakery_storefront/internal/modal"
	"bakery_storefront/internal/services"
	"bakery_storefront/internal/session"
)

type RouterConfig struct {
	Sessions     *session.Manager
	CookieMaxAge int // seconds

	AuthService     services.AuthService
	CatalogService  services.CatalogService
	OrderService    services.OrderService
	CheckoutService services.CheckoutService
	Board           *modal.Board

	Log *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	sessionHandler := NewSessionHandler(cfg.AuthService, log)
	catalogHandler := NewCatalogHandler(cfg.CatalogService)
	cartHandler := NewCartHandler(cfg.CatalogService)
	orderHandler := NewOrderHandler(cfg.OrderService, cfg.CheckoutService, cfg.Board, log)
	adminHandler := NewAdminHandler(cfg.OrderService, cfg.CatalogService, log)

	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log), metrics.Middleware())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.Use(Sessions(cfg.Sessions, cfg.CookieMaxAge, log))
	{
		api.POST("/session", sessionHandler.CreateSession)
		api.GET("/session", sessionHandler.GetSession)
		api.POST("/auth/login", sessionHandler.Login)
		api.POST("/auth/signup", sessionHandler.Signup)
		api.POST("/auth/logout", sessionHandler.Logout)
		api.GET("/notifications", sessionHandler.Notifications)
		api.DELETE("/notifications/:id", sessionHandler.DismissNotification)

		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/search", catalogHandler.SearchProducts)
		api.GET("/products/featured", catalogHandler.FeaturedProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/categories", catalogHandler.ListCategories)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PUT("/cart/items/:product_id", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.POST("/cart/visibility", cartHandler.SetVisibility)

		api.GET("/checkout", orderHandler.GetCheckout)
		api.POST("/checkout", orderHandler.PlaceOrder)
		api.GET("/checkout/modal", orderHandler.GetModal)
		api.DELETE("/checkout/modal", orderHandler.CloseModal)

		api.GET("/orders", RequireAuth(), orderHandler.History)
		api.GET("/orders/:id/tracking", orderHandler.Tracking)
	}

	admin := api.Group("/admin", RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	}

	return router
}
