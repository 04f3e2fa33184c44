package models

type Product struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	Name             string        `json:"name" gorm:"not null"`
	Price            int           `json:"price" gorm:"not null"`
	Category         string        `json:"category" gorm:"index;not null"`
	Description      string        `json:"description" gorm:"type:text"`
	ShortDescription string        `json:"short_description"`
	Images           []string      `json:"images" gorm:"serializer:json"`
	Rating           float64       `json:"rating"`
	Featured         bool          `json:"featured"`
	Sizes            []SizeVariant `json:"sizes,omitempty" gorm:"serializer:json"`
	Reviews          []Review      `json:"reviews" gorm:"foreignKey:ProductID"`
}

// SizeVariant is a purchasable size of a product with its own price.
type SizeVariant struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Review struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"-" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" gorm:"type:text"`
	Date      string `json:"date"`
	Avatar    string `json:"avatar,omitempty"`
}

type Category string

const (
	CategoryCakes    Category = "cakes"
	CategoryPastries Category = "pastries"
	CategoryBreads   Category = "breads"
	CategoryDesserts Category = "desserts"
	CategorySeasonal Category = "seasonal"

	// CategoryAll is the menu filter value that matches every product.
	CategoryAll Category = "all"
)

var Categories = []Category{CategoryCakes, CategoryPastries, CategoryBreads, CategoryDesserts, CategorySeasonal}

// PrimaryImage returns the first image, or "" for products without images.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// SizePrice returns the price for the named size. The base price is used when
// the size is empty or unknown.
func (p *Product) SizePrice(size string) int {
	for _, s := range p.Sizes {
		if s.Name == size {
			return s.Price
		}
	}
	return p.Price
}
