package repository

import (
	"strings"

	"bakery_storefront/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Search(query string) ([]models.Product, error)
	GetFeatured() ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) base() *gorm.DB {
	return r.db.Preload("Reviews").Order("id")
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.base().Find(&products).Error
	return products, err
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Reviews").First(&product, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) GetByCategory(category string) ([]models.Product, error) {
	if category == string(models.CategoryAll) {
		return r.GetAll()
	}
	var products []models.Product
	err := r.base().Where("category = ?", category).Find(&products).Error
	return products, err
}

func (r *productRepository) Search(query string) ([]models.Product, error) {
	like := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	err := r.base().Where(
		"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(category) LIKE ?",
		like, like, like, like,
	).Find(&products).Error
	return products, err
}

func (r *productRepository) GetFeatured() ([]models.Product, error) {
	var products []models.Product
	err := r.base().Where("featured = ?", true).Find(&products).Error
	return products, err
}
