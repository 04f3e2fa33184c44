package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bakery_storefront/internal/events"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
	"bakery_storefront/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderClosed   = errors.New("order is already delivered or cancelled")
)

const allStatuses = "all"

// Sort orders accepted by AdminOrders.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

type OrderFilter struct {
	// Status restricts the listing to one status. Empty or "all" keeps every order.
	Status string
	// Search keeps orders whose id contains it, ignoring case.
	Search string
	Sort   string
}

type DashboardStats struct {
	TotalOrders   int `json:"total_orders"`
	PendingOrders int `json:"pending_orders"`
	TotalRevenue  int `json:"total_revenue"`
	TotalProducts int `json:"total_products"`
}

type OrderService interface {
	GetOrderByID(id string) (*models.Order, error)
	GetOrdersByUser(userID uint, status string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	AdminOrders(filter OrderFilter) ([]models.Order, error)
	DashboardStats() (*DashboardStats, error)
	UpdateOrderStatus(id string, status models.OrderStatus, notifier notification.Notifier) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	bus         *events.Bus
	now         func() time.Time
	log         *zap.Logger

	// mu serializes status updates so the terminal check and the write
	// see the same order.
	mu sync.Mutex
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, bus *events.Bus, log *zap.Logger) OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		bus:         bus,
		now:         time.Now,
		log:         log,
	}
}

func (s *orderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return order, nil
}

// GetOrdersByUser returns the user's orders newest first.
func (s *orderService) GetOrdersByUser(userID uint, status string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders of user %d: %w", userID, err)
	}
	orders = filterByStatus(orders, status)
	sortOrders(orders, SortNewest)
	return orders, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) AdminOrders(filter OrderFilter) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders = filterByStatus(orders, filter.Status)

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		kept := orders[:0]
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.ID), term) {
				kept = append(kept, o)
			}
		}
		orders = kept
	}

	sortOrders(orders, filter.Sort)
	return orders, nil
}

// DashboardStats counts processing orders as pending.
func (s *orderService) DashboardStats() (*DashboardStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	stats := &DashboardStats{TotalOrders: len(orders), TotalProducts: len(products)}
	for _, o := range orders {
		if o.Status == models.OrderPending || o.Status == models.OrderProcessing {
			stats.PendingOrders++
		}
		stats.TotalRevenue += o.TotalAmount
	}
	return stats, nil
}

// UpdateOrderStatus moves an order to status and lines its tracking steps up
// with it. Cancelling leaves the steps as they are.
func (s *orderService) UpdateOrderStatus(id string, status models.OrderStatus, notifier notification.Notifier) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() && order.Status != status {
		return nil, ErrOrderClosed
	}

	from := order.Status
	order.Status = status
	if idx, ok := status.StepIndex(); ok {
		cascadeSteps(order.TrackingSteps, idx, s.now())
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}

	s.log.Info("order status updated",
		zap.String("order_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(status)),
	)
	if notifier != nil {
		notifier.Notify(notification.Toast{
			Title:       "Order Updated",
			Description: fmt.Sprintf("Order #%s status changed to %s", id, status.Label()),
			Variant:     notification.VariantSuccess,
		})
	}
	if s.bus != nil {
		s.bus.Publish(events.Event{
			Name:    events.OrderStatusChanged,
			Payload: events.StatusChange{OrderID: id, From: string(from), To: string(status)},
		})
	}
	return order, nil
}

// cascadeSteps completes every step up to and including idx, stamping the
// ones without a time. Steps after idx keep whatever progress they have.
func cascadeSteps(steps []models.TrackingStep, idx int, now time.Time) {
	for i := 0; i <= idx && i < len(steps); i++ {
		steps[i].Completed = true
		if steps[i].Time == nil {
			t := now
			steps[i].Time = &t
		}
	}
}

func filterByStatus(orders []models.Order, status string) []models.Order {
	if status == "" || status == allStatuses {
		return orders
	}
	kept := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			kept = append(kept, o)
		}
	}
	return kept
}

func sortOrders(orders []models.Order, order string) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		switch order {
		case SortOldest:
			return a.Date.Before(b.Date)
		case SortHighest:
			return a.TotalAmount > b.TotalAmount
		case SortLowest:
			return a.TotalAmount < b.TotalAmount
		default:
			return a.Date.After(b.Date)
		}
	})
}
