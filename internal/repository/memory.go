package repository

import (
	"fmt"
	"strings"
	"sync"

	"bakery_storefront/internal/models"
)

// MemoryProductRepository serves a fixed catalog. It is read-only after
// construction.
type MemoryProductRepository struct {
	products []models.Product
}

func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	return &MemoryProductRepository{products: products}
}

func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	return append([]models.Product(nil), r.products...), nil
}

func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryProductRepository) GetByCategory(category string) ([]models.Product, error) {
	if category == string(models.CategoryAll) {
		return r.GetAll()
	}
	return r.filter(func(p *models.Product) bool { return p.Category == category }), nil
}

// Search matches query case-insensitively against name, descriptions and category.
func (r *MemoryProductRepository) Search(query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	return r.filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.ShortDescription), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	}), nil
}

func (r *MemoryProductRepository) GetFeatured() ([]models.Product, error) {
	return r.filter(func(p *models.Product) bool { return p.Featured }), nil
}

func (r *MemoryProductRepository) filter(keep func(*models.Product) bool) []models.Product {
	var out []models.Product
	for i := range r.products {
		if keep(&r.products[i]) {
			out = append(out, r.products[i])
		}
	}
	return out
}

// MemoryOrderRepository keeps orders in insertion order. Stored orders are
// copied on the way in and out.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*models.Order
	byID   map[string]*models.Order
	lastID uint
}

func NewMemoryOrderRepository(seed []models.Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{byID: make(map[string]*models.Order)}
	for i := range seed {
		_ = r.Create(&seed[i])
	}
	return r
}

func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return fmt.Errorf("failed to create order %s: duplicate id", order.ID)
	}
	// Lines without an id get the next free one, like an autoincrement column.
	for i := range order.Items {
		if order.Items[i].ID == 0 {
			r.lastID++
			order.Items[i].ID = r.lastID
		} else if order.Items[i].ID > r.lastID {
			r.lastID = order.Items[i].ID
		}
		order.Items[i].OrderID = order.ID
	}
	stored := order.Clone()
	r.orders = append(r.orders, stored)
	r.byID[order.ID] = stored
	return nil
}

func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return order.Clone(), nil
}

func (r *MemoryOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o.Clone())
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[order.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *order.Clone()
	return nil
}

func (r *MemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o.Clone())
	}
	return out, nil
}
