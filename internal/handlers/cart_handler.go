package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery_storefront/internal/cart"
	"bakery_storefront/internal/format"
	"bakery_storefront/internal/metrics"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/services"
)

type CartHandler struct {
	catalogService services.CatalogService
}

func NewCartHandler(catalogService services.CatalogService) *CartHandler {
	return &CartHandler{catalogService: catalogService}
}

type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`

	// BuyNow sends the client straight to checkout after adding.
	BuyNow bool `json:"buy_now"`
}

type UpdateItemRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type VisibilityRequest struct {
	Action string `json:"action" binding:"required,oneof=show hide toggle"`
}

func cartView(snapshot cart.Snapshot) gin.H {
	display := gin.H{
		"subtotal":     format.Currency(snapshot.Totals.Subtotal),
		"delivery_fee": format.Currency(snapshot.Totals.DeliveryFee),
		"tax":          format.Currency(snapshot.Totals.Tax),
		"total":        format.Currency(snapshot.Totals.Total),
	}
	return gin.H{
		"items":   snapshot.Items,
		"totals":  snapshot.Totals,
		"open":    snapshot.Open,
		"display": display,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView(currentSession(c).Cart.Snapshot()))
}

// AddItem prices the line from the catalog, using the size price when a
// size is picked.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.catalogService.GetProductByID(req.ProductID)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	if req.Size != "" && !hasSize(product, req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown size"})
		return
	}

	s := currentSession(c)
	s.Cart.AddItem(models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.SizePrice(req.Size),
		Quantity:  req.Quantity,
		Image:     product.PrimaryImage(),
		Size:      req.Size,
	})
	metrics.CartOperations.WithLabelValues("add").Inc()

	view := cartView(s.Cart.Snapshot())
	if req.BuyNow {
		view["redirect"] = "/checkout"
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	s := currentSession(c)
	s.Cart.UpdateQuantity(productID, req.Size, req.Quantity)
	metrics.CartOperations.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, cartView(s.Cart.Snapshot()))
}

// RemoveItem takes the size of the line from ?size=.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	s := currentSession(c)
	s.Cart.RemoveItem(productID, c.Query("size"))
	metrics.CartOperations.WithLabelValues("remove").Inc()
	c.JSON(http.StatusOK, cartView(s.Cart.Snapshot()))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	s := currentSession(c)
	s.Cart.Clear()
	metrics.CartOperations.WithLabelValues("clear").Inc()
	c.JSON(http.StatusOK, cartView(s.Cart.Snapshot()))
}

func (h *CartHandler) SetVisibility(c *gin.Context) {
	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	s := currentSession(c)
	switch req.Action {
	case "show":
		s.Cart.Show()
	case "hide":
		s.Cart.Hide()
	case "toggle":
		s.Cart.Toggle()
	}
	c.JSON(http.StatusOK, gin.H{"open": s.Cart.IsOpen()})
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func hasSize(p *models.Product, size string) bool {
	for _, s := range p.Sizes {
		if s.Name == size {
			return true
		}
	}
	return false
}
