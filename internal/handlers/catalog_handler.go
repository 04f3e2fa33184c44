package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery_storefront/internal/format"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type productView struct {
	models.Product
	DisplayPrice string `json:"display_price"`
}

func viewProducts(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, DisplayPrice: format.Currency(p.Price)})
	}
	return views
}

// ListProducts serves the menu: ?category= narrows it, ?q= searches names
// and descriptions.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.DefaultQuery("category", string(models.CategoryAll))
	products, err := h.catalogService.Menu(category, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": viewProducts(products)})
}

// SearchProducts matches every text field of the catalog, category included.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products, err := h.catalogService.SearchProducts(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": viewProducts(products)})
}

func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.catalogService.GetFeaturedProducts(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get featured products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": viewProducts(products)})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.catalogService.GetProductByID(uint(id))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found", "links": []string{"/menu"}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}

	related, err := h.catalogService.GetRelatedProducts(product.ID, services.DefaultRelatedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get related products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": productView{Product: *product, DisplayPrice: format.Currency(product.Price)},
		"related": viewProducts(related),
	})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}
