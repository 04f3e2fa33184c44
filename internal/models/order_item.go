package models

// OrderItem is a cart line snapshotted into an order at checkout time.
type OrderItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderID   string `json:"-" gorm:"index;size:16;not null"`
	ProductID uint   `json:"product_id" gorm:"not null"`
	Name      string `json:"name" gorm:"not null"`
	Price     int    `json:"price" gorm:"not null"`
	Quantity  int    `json:"quantity" gorm:"not null"`
	Image     string `json:"image"`
	Size      string `json:"size,omitempty"`
}

func (i OrderItem) LineTotal() int {
	return i.Price * i.Quantity
}
