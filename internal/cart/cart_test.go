package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
)

type recorder struct {
	toasts []notification.Toast
}

func (r *recorder) Notify(t notification.Toast) { r.toasts = append(r.toasts, t) }

func (r *recorder) titles() []string {
	var out []string
	for _, t := range r.toasts {
		out = append(out, t.Title)
	}
	return out
}

func newCart() (*Cart, *recorder) {
	rec := &recorder{}
	return New(rec, nil), rec
}

func cake(size string, qty int) models.CartItem {
	return models.CartItem{ProductID: 1, Name: "Chocolate Delight Cake", Price: 499, Quantity: qty, Size: size}
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	c, rec := newCart()

	c.AddItem(cake("Small", 1))
	c.AddItem(cake("Small", 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, []string{"Added to cart", "Added to cart"}, rec.titles())
	assert.Equal(t, "Chocolate Delight Cake has been added to your cart.", rec.toasts[0].Description)
	assert.Equal(t, notification.VariantSuccess, rec.toasts[0].Variant)
}

func TestAddItemQuantityIsSumOfAdds(t *testing.T) {
	for _, adds := range [][]int{{1}, {1, 1, 1}, {2, 5, 3}, {10, 1}} {
		c, _ := newCart()
		want := 0
		for _, q := range adds {
			c.AddItem(cake("Medium (1kg)", q))
			want += q
		}
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, want, items[0].Quantity, "adds %v", adds)
	}
}

func TestAddItemDifferentSizeIsDistinctLine(t *testing.T) {
	c, _ := newCart()

	c.AddItem(cake("Small (500g)", 1))
	c.AddItem(cake("Large (2kg)", 1))
	c.AddItem(cake("", 1))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Small (500g)", items[0].Size)
	assert.Equal(t, "Large (2kg)", items[1].Size)
	assert.Equal(t, "", items[2].Size)
}

func TestAddItemNormalisesQuantity(t *testing.T) {
	c, _ := newCart()
	c.AddItem(cake("Small", 0))
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	c, rec := newCart()
	c.AddItem(cake("Small", 1))

	c.UpdateQuantity(1, "Small", 42)
	assert.Equal(t, 42, c.Items()[0].Quantity)

	c.UpdateQuantity(1, "Large", 7)
	require.Len(t, c.Items(), 1)
	assert.Len(t, rec.toasts, 1)
}

func TestUpdateQuantityZeroIsRemove(t *testing.T) {
	viaUpdate, recUpdate := newCart()
	viaRemove, recRemove := newCart()
	for _, c := range []*Cart{viaUpdate, viaRemove} {
		c.AddItem(cake("Small", 2))
		c.AddItem(cake("Large", 1))
	}

	viaUpdate.UpdateQuantity(1, "Small", 0)
	viaRemove.RemoveItem(1, "Small")

	assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
	assert.Equal(t, recRemove.titles(), recUpdate.titles())

	viaUpdate.UpdateQuantity(1, "Large", -3)
	assert.Empty(t, viaUpdate.Items())
}

func TestRemoveItem(t *testing.T) {
	c, rec := newCart()
	c.AddItem(cake("Small", 1))

	c.RemoveItem(1, "Small")

	assert.Empty(t, c.Items())
	require.Len(t, rec.toasts, 2)
	assert.Equal(t, "Item removed", rec.toasts[1].Title)
	assert.Equal(t, "Chocolate Delight Cake has been removed from your cart.", rec.toasts[1].Description)
}

func TestRemoveItemOnEmptyCart(t *testing.T) {
	c, rec := newCart()

	c.RemoveItem(99, "Small")

	assert.Empty(t, c.Items())
	assert.Empty(t, rec.toasts)
}

func TestClearAndReset(t *testing.T) {
	c, rec := newCart()
	c.AddItem(cake("Small", 1))
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, "Cart cleared", rec.toasts[len(rec.toasts)-1].Title)

	c.AddItem(cake("Small", 1))
	before := len(rec.toasts)
	c.Reset()
	assert.Zero(t, c.Len())
	assert.Len(t, rec.toasts, before)
}

func TestTotalsScenario(t *testing.T) {
	c, _ := newCart()
	c.AddItem(models.CartItem{ProductID: 1, Name: "Chocolate Delight Cake", Price: 499, Quantity: 1, Size: "Medium (1kg)"})
	c.AddItem(models.CartItem{ProductID: 3, Name: "Artisan Sourdough Bread", Price: 199, Quantity: 2})

	totals := c.Totals()

	assert.Equal(t, 897, totals.Subtotal)
	assert.Equal(t, 50, totals.DeliveryFee)
	assert.Equal(t, 45, totals.Tax)
	assert.Equal(t, 992, totals.Total)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestTotalFormula(t *testing.T) {
	for _, subtotal := range []int{0, 1, 9, 10, 11, 30, 897, 1000, 12345} {
		totals := ComputeTotals([]models.CartItem{{ProductID: 1, Price: subtotal, Quantity: 1}})
		assert.Equal(t, subtotal+50+Tax(subtotal), totals.Total, "subtotal %d", subtotal)
	}
	assert.Equal(t, 0, Tax(0))
	assert.Equal(t, 1, Tax(10))
	assert.Equal(t, 0, Tax(9))
}

func TestVisibilityIndependentOfContents(t *testing.T) {
	c, _ := newCart()
	assert.False(t, c.IsOpen())

	c.Show()
	assert.True(t, c.IsOpen())
	c.Toggle()
	assert.False(t, c.IsOpen())
	c.Toggle()
	c.AddItem(cake("Small", 1))
	c.Clear()
	assert.True(t, c.IsOpen())
	c.Hide()
	assert.False(t, c.Snapshot().Open)
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _ := newCart()
	c.AddItem(cake("Small", 1))

	snap := c.Snapshot()
	snap.Items[0].Quantity = 100

	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.Equal(t, 499, snap.Totals.Subtotal)
}
