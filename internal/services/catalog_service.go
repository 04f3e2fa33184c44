package services

import (
	"errors"
	"fmt"
	"strings"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/repository"
)

const (
	DefaultRelatedLimit  = 4
	DefaultFeaturedLimit = 4
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	GetProductsByCategory(category string) ([]models.Product, error)
	SearchProducts(query string) ([]models.Product, error)
	GetRelatedProducts(id uint, limit int) ([]models.Product, error)
	GetFeaturedProducts(limit int) ([]models.Product, error)
	Menu(category, query string) ([]models.Product, error)
	Categories() []models.Category
}

type catalogService struct {
	productRepo repository.ProductRepository
	picker      Picker
}

func NewCatalogService(productRepo repository.ProductRepository, picker Picker) CatalogService {
	if picker == nil {
		picker = NewRandomPicker()
	}
	return &catalogService{productRepo: productRepo, picker: picker}
}

func (s *catalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *catalogService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}

func (s *catalogService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(category)
}

func (s *catalogService) SearchProducts(query string) ([]models.Product, error) {
	return s.productRepo.Search(query)
}

// GetRelatedProducts returns up to limit other products of the same
// category in random order. An unknown id has no related products.
func (s *catalogService) GetRelatedProducts(id uint, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	product, err := s.GetProductByID(id)
	if errors.Is(err, ErrProductNotFound) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, err
	}

	siblings, err := s.productRepo.GetByCategory(product.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get related products: %w", err)
	}
	related := make([]models.Product, 0, len(siblings))
	for _, p := range siblings {
		if p.ID != id {
			related = append(related, p)
		}
	}
	return s.pick(related, limit), nil
}

func (s *catalogService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	featured, err := s.productRepo.GetFeatured()
	if err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}
	return s.pick(featured, limit), nil
}

// Menu filters by category, then by a case-insensitive match on name or
// description. An unrecognised category shows every product.
func (s *catalogService) Menu(category, query string) ([]models.Product, error) {
	if !knownCategory(category) {
		category = string(models.CategoryAll)
	}
	products, err := s.productRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products, nil
	}
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Description), term) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *catalogService) Categories() []models.Category {
	return append([]models.Category(nil), models.Categories...)
}

func (s *catalogService) pick(products []models.Product, limit int) []models.Product {
	s.picker.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

func knownCategory(category string) bool {
	for _, c := range models.Categories {
		if string(c) == category {
			return true
		}
	}
	return false
}
