package models

// CartItem is one line of a shopping cart. Two items are the same line only
// when both ProductID and Size match.
type CartItem struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Size      string `json:"size,omitempty"`
}

type LineKey struct {
	ProductID uint
	Size      string
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size}
}

// LineTotal is unit price times quantity.
func (i CartItem) LineTotal() int {
	return i.Price * i.Quantity
}
