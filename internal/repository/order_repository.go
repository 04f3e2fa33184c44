package repository

import (
	"fmt"

	"bakery_storefront/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	Update(order *models.Order) error
	GetAll() ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preload() *gorm.DB {
	return r.db.Preload("Items").Preload("TrackingSteps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *orderRepository) Create(order *models.Order) error {
	for i := range order.TrackingSteps {
		order.TrackingSteps[i].Position = i
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.ID, err)
	}
	return nil
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.preload().First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.preload().Where("user_id = ?", userID).Order("date").Find(&orders).Error
	return orders, err
}

// Update saves the order row together with its tracking steps.
func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":             order.Status,
			"total_amount":       order.TotalAmount,
			"delivery_address":   order.DeliveryAddress,
			"payment_method":     order.PaymentMethod,
			"estimated_delivery": order.EstimatedDelivery,
		}).Error; err != nil {
			return fmt.Errorf("failed to update order %s: %w", order.ID, err)
		}
		for i := range order.TrackingSteps {
			step := &order.TrackingSteps[i]
			step.OrderID = order.ID
			step.Position = i
			if err := tx.Save(step).Error; err != nil {
				return fmt.Errorf("failed to update tracking step %d of %s: %w", i, order.ID, err)
			}
		}
		return nil
	})
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.preload().Order("date").Find(&orders).Error
	return orders, err
}
