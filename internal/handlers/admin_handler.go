package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/format"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/services"
)

const (
	recentOrdersLimit = 5
	topProductsLimit  = 5
)

type AdminHandler struct {
	orderService   services.OrderService
	catalogService services.CatalogService
	log            *zap.Logger
}

func NewAdminHandler(orderService services.OrderService, catalogService services.CatalogService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{orderService: orderService, catalogService: catalogService, log: log}
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// Dashboard reports the store totals with the first orders and featured
// products.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.orderService.DashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard"})
		return
	}
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}
	products, err := h.catalogService.GetAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products"})
		return
	}

	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}
	top := make([]models.Product, 0, topProductsLimit)
	for _, p := range products {
		if p.Featured && len(top) < topProductsLimit {
			top = append(top, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           stats,
		"display_revenue": format.Currency(stats.TotalRevenue),
		"recent_orders":   viewOrders(orders),
		"top_products":    viewProducts(top),
	})
}

// ListOrders accepts ?status=, ?q= (order id substring) and
// ?sort=newest|oldest|highest|lowest.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.AdminOrders(services.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
		Sort:   c.DefaultQuery("sort", services.SortNewest),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": viewOrders(orders)})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	s := currentSession(c)
	order, err := h.orderService.UpdateOrderStatus(c.Param("id"), req.Status, s.Inbox)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	case errors.Is(err, services.ErrOrderClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Order is already delivered or cancelled"})
		return
	case err != nil:
		h.log.Error("failed to update order status", zap.String("order_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": viewOrder(order)})
}
