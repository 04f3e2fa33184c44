package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bakery_storefront/internal/cart"
	"bakery_storefront/internal/events"
	"bakery_storefront/internal/format"
	"bakery_storefront/internal/metrics"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/repository"
)

// Checkout modes.
const (
	// ModeCreate stores a new pending order for every checkout.
	ModeCreate = "create"
	// ModeSample confirms with the id of an existing order and stores nothing.
	// With no orders stored it behaves like ModeCreate.
	ModeSample = "sample"
)

const (
	DefaultProcessingDelay = 3 * time.Second

	maxIDAttempts = 20
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutIncomplete = errors.New("missing checkout details")
)

var paymentLabels = map[string]string{
	"credit_card":      "Credit Card",
	"upi":              "Online Payment",
	"online_payment":   "Online Payment",
	"cod":              "Cash on Delivery",
	"cash_on_delivery": "Cash on Delivery",
}

// PaymentLabel turns a payment method key into the label stored on orders.
// Unknown methods are kept as given.
func PaymentLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

type CheckoutDetails struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes,omitempty"`
}

// Missing lists the required fields left blank, in form order.
func (d CheckoutDetails) Missing() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"phone", d.Phone},
		{"email", d.Email},
		{"address", d.Address},
		{"payment_method", d.PaymentMethod},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type Placement struct {
	OrderID           string        `json:"order_id"`
	EstimatedDelivery string        `json:"estimated_delivery"`
	Totals            cart.Totals   `json:"totals"`
	Order             *models.Order `json:"order,omitempty"`
}

type CheckoutService interface {
	// Defaults prefills the checkout form for a logged-in user.
	Defaults(user *models.User) CheckoutDetails
	PlaceOrder(sessionID string, c *cart.Cart, details CheckoutDetails, user *models.User) (*Placement, error)
}

type CheckoutOptions struct {
	Mode  string
	Delay time.Duration

	// AfterFunc schedules the confirmation. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
	Now       func() time.Time
}

type checkoutService struct {
	orderRepo repository.OrderRepository
	bus       *events.Bus
	picker    Picker
	opts      CheckoutOptions
	log       *zap.Logger
}

func NewCheckoutService(orderRepo repository.OrderRepository, bus *events.Bus, picker Picker, opts CheckoutOptions, log *zap.Logger) CheckoutService {
	if picker == nil {
		picker = NewRandomPicker()
	}
	if opts.Mode != ModeSample {
		opts.Mode = ModeCreate
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultProcessingDelay
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &checkoutService{orderRepo: orderRepo, bus: bus, picker: picker, opts: opts, log: log}
}

func (s *checkoutService) Defaults(user *models.User) CheckoutDetails {
	d := CheckoutDetails{PaymentMethod: "credit_card"}
	if user != nil {
		d.Name = user.Name
		d.Email = user.Email
		d.Phone = user.Phone
		d.Address = user.Address
	}
	return d
}

// PlaceOrder opens the processing modal for the session and schedules its
// confirmation. The cart is cleared once the order is confirmed.
func (s *checkoutService) PlaceOrder(sessionID string, c *cart.Cart, details CheckoutDetails, user *models.User) (*Placement, error) {
	snapshot := c.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if missing := details.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrCheckoutIncomplete, strings.Join(missing, ", "))
	}

	now := s.opts.Now()
	p := &Placement{
		EstimatedDelivery: format.DeliveryWindow(now),
		Totals:            snapshot.Totals,
	}

	mode := s.opts.Mode
	if mode == ModeSample {
		id, err := s.sampleOrderID()
		if err != nil {
			return nil, err
		}
		if id == "" {
			mode = ModeCreate
		}
		p.OrderID = id
	}
	if mode != ModeSample {
		order, err := s.createOrder(snapshot, details, user, now, p.EstimatedDelivery)
		if err != nil {
			return nil, err
		}
		p.Order = order
		p.OrderID = order.ID
	}

	metrics.OrdersPlaced.WithLabelValues(mode).Inc()
	s.log.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", p.OrderID),
		zap.String("mode", mode),
		zap.Int("total", p.Totals.Total),
	)

	placement := events.Placement{OrderID: p.OrderID, EstimatedDelivery: p.EstimatedDelivery}
	s.bus.Publish(events.Event{Name: events.OrderProcessing, SessionID: sessionID, Payload: placement})
	s.opts.AfterFunc(s.opts.Delay, func() {
		s.bus.Publish(events.Event{Name: events.OrderConfirmed, SessionID: sessionID, Payload: placement})
		c.Clear()
		s.log.Debug("order confirmed", zap.String("session_id", sessionID), zap.String("order_id", p.OrderID))
	})
	return p, nil
}

func (s *checkoutService) createOrder(snapshot cart.Snapshot, details CheckoutDetails, user *models.User, now time.Time, estimate string) (*models.Order, error) {
	id, err := s.newOrderID()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:                id,
		TotalAmount:       snapshot.Totals.Total,
		Date:              now,
		Status:            models.OrderPending,
		DeliveryAddress:   details.Address,
		PaymentMethod:     PaymentLabel(details.PaymentMethod),
		EstimatedDelivery: estimate,
		TrackingSteps:     models.NewTrackingSteps(now),
	}
	if user != nil {
		order.UserID = user.ID
	}
	for _, item := range snapshot.Items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   id,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Size:      item.Size,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}
	return order, nil
}

// newOrderID draws "DB" plus five digits until it finds one not in use.
func (s *checkoutService) newOrderID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := fmt.Sprintf("DB%05d", s.picker.Intn(100000))
		_, err := s.orderRepo.GetByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check order id %s: %w", id, err)
		}
	}
	return "", errors.New("failed to allocate a free order id")
}

// sampleOrderID picks a stored order id, or "" when nothing is stored.
func (s *checkoutService) sampleOrderID() (string, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return "", fmt.Errorf("failed to list orders: %w", err)
	}
	if len(orders) == 0 {
		return "", nil
	}
	return orders[s.picker.Intn(len(orders))].ID, nil
}
