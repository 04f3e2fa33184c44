// Package cart owns the line items a browsing session intends to buy.
//
// Lines are identified by (product id, size): the same product in two sizes
// is two lines. Every operation succeeds; removing an unknown line is a no-op.
package cart

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
)

const (
	// DeliveryFee is charged on every order, in currency units.
	DeliveryFee = 50
	// TaxRate is applied to the subtotal and rounded to a whole unit.
	TaxRate = 0.05
)

type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Tax         int `json:"tax"`
	Total       int `json:"total"`
	ItemCount   int `json:"item_count"`
}

// Tax returns round(subtotal * TaxRate).
func Tax(subtotal int) int {
	return int(math.Round(float64(subtotal) * TaxRate))
}

// ComputeTotals derives the checkout amounts for a set of lines.
func ComputeTotals(items []models.CartItem) Totals {
	t := Totals{DeliveryFee: DeliveryFee}
	for _, item := range items {
		t.Subtotal += item.LineTotal()
		t.ItemCount += item.Quantity
	}
	t.Tax = Tax(t.Subtotal)
	t.Total = t.Subtotal + t.DeliveryFee + t.Tax
	return t
}

type Snapshot struct {
	Items  []models.CartItem `json:"items"`
	Totals Totals            `json:"totals"`
	Open   bool              `json:"open"`
}

type Cart struct {
	mu       sync.Mutex
	items    []models.CartItem
	open     bool
	notifier notification.Notifier
	log      *zap.Logger
}

func New(notifier notification.Notifier, log *zap.Logger) *Cart {
	if notifier == nil {
		notifier = notification.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cart{notifier: notifier, log: log}
}

// AddItem merges item into the line with the same product and size, or
// appends it as a new line. Quantities below one count as one.
func (c *Cart) AddItem(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, item)
	}
	c.mu.Unlock()

	c.log.Info("adding item",
		zap.Uint("product_id", item.ProductID),
		zap.String("size", item.Size),
		zap.Int("quantity", item.Quantity),
		zap.Bool("merged", merged),
	)
	c.notifier.Notify(notification.Toast{
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart.", item.Name),
		Variant:     notification.VariantSuccess,
	})
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (c *Cart) UpdateQuantity(productID uint, size string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)
		return
	}

	key := models.LineKey{ProductID: productID, Size: size}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity = quantity
			c.log.Info("updating quantity", zap.Uint("product_id", productID), zap.String("size", size), zap.Int("new_quantity", quantity))
			return
		}
	}
}

func (c *Cart) RemoveItem(productID uint, size string) {
	key := models.LineKey{ProductID: productID, Size: size}

	c.mu.Lock()
	var removed *models.CartItem
	for i := range c.items {
		if c.items[i].Key() == key {
			item := c.items[i]
			removed = &item
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed == nil {
		return
	}
	c.log.Info("removing item", zap.Uint("product_id", productID), zap.String("size", size))
	c.notifier.Notify(notification.Toast{
		Title:       "Item removed",
		Description: fmt.Sprintf("%s has been removed from your cart.", removed.Name),
		Variant:     notification.VariantDefault,
	})
}

func (c *Cart) Clear() {
	c.Reset()
	c.log.Info("clearing cart")
	c.notifier.Notify(notification.Toast{
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart.",
		Variant:     notification.VariantDefault,
	})
}

// Reset empties the cart without notifying.
func (c *Cart) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) Totals() Totals {
	return ComputeTotals(c.Items())
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := append([]models.CartItem{}, c.items...)
	return Snapshot{Items: items, Totals: ComputeTotals(items), Open: c.open}
}

// Show, Hide and Toggle drive the cart panel flag. They never touch the items.
func (c *Cart) Show() { c.setOpen(func(bool) bool { return true }) }

func (c *Cart) Hide() { c.setOpen(func(bool) bool { return false }) }

func (c *Cart) Toggle() { c.setOpen(func(open bool) bool { return !open }) }

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) setOpen(f func(bool) bool) {
	c.mu.Lock()
	c.open = f(c.open)
	c.mu.Unlock()
}
