package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/events"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
)

func newOrders(t *testing.T) (OrderService, *events.Bus) {
	products, orders := seededRepos(t)
	bus := events.NewBus()
	svc := NewOrderService(orders, products, bus, nil)
	svc.(*orderService).now = fixedNow
	return svc, bus
}

func orderIDs(orders []models.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestGetOrderByID(t *testing.T) {
	svc, _ := newOrders(t)

	order, err := svc.GetOrderByID("DB24680")
	require.NoError(t, err)
	assert.Equal(t, models.OrderOutForDelivery, order.Status)
	assert.Equal(t, 4, order.CurrentStep())

	order, err = svc.GetOrderByID("DB00000")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrdersByUser(t *testing.T) {
	svc, _ := newOrders(t)

	orders, err := svc.GetOrdersByUser(1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"DB97531", "DB13579", "DB24680", "DB67890", "DB12345"}, orderIDs(orders))

	orders, err = svc.GetOrdersByUser(1, "delivered")
	require.NoError(t, err)
	assert.Equal(t, []string{"DB67890", "DB12345"}, orderIDs(orders))

	orders, err = svc.GetOrdersByUser(2, "all")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAdminOrders(t *testing.T) {
	svc, _ := newOrders(t)

	tests := []struct {
		name   string
		filter OrderFilter
		want   []string
	}{
		{"default is newest", OrderFilter{}, []string{"DB97531", "DB13579", "DB24680", "DB67890", "DB12345"}},
		{"oldest", OrderFilter{Sort: SortOldest}, []string{"DB12345", "DB67890", "DB24680", "DB13579", "DB97531"}},
		{"highest", OrderFilter{Sort: SortHighest}, []string{"DB12345", "DB13579", "DB24680", "DB67890", "DB97531"}},
		{"lowest", OrderFilter{Sort: SortLowest}, []string{"DB97531", "DB67890", "DB24680", "DB13579", "DB12345"}},
		{"status tab", OrderFilter{Status: "delivered", Sort: SortOldest}, []string{"DB12345", "DB67890"}},
		{"id search", OrderFilter{Search: "db1"}, []string{"DB13579", "DB12345"}},
		{"no match", OrderFilter{Status: "cancelled"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.AdminOrders(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(got))
		})
	}
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newOrders(t)

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalOrders:   5,
		PendingOrders: 2,
		TotalRevenue:  3131,
		TotalProducts: 15,
	}, stats)
}

func TestUpdateOrderStatusCascadesSteps(t *testing.T) {
	svc, bus := newOrders(t)
	rec := &eventRecorder{}
	rec.listen(bus, events.OrderStatusChanged)
	toasts := &toastRecorder{}

	order, err := svc.UpdateOrderStatus("DB97531", models.OrderOutForDelivery, toasts)
	require.NoError(t, err)
	assert.Equal(t, models.OrderOutForDelivery, order.Status)
	assert.Equal(t, 3, order.CurrentStep())

	placed := time.Date(2023, time.November, 5, 11, 0, 0, 0, time.Local)
	assert.True(t, order.TrackingSteps[0].Time.Equal(placed), "existing timestamps are kept")
	assert.True(t, order.TrackingSteps[1].Time.Equal(noon))
	assert.True(t, order.TrackingSteps[2].Time.Equal(noon))
	assert.Nil(t, order.TrackingSteps[3].Time)

	stored, err := svc.GetOrderByID("DB97531")
	require.NoError(t, err)
	assert.Equal(t, models.OrderOutForDelivery, stored.Status)
	assert.Equal(t, 3, stored.CurrentStep())

	require.Len(t, toasts.toasts, 1)
	assert.Equal(t, "Order Updated", toasts.toasts[0].Title)
	assert.Equal(t, "Order #DB97531 status changed to OUT FOR DELIVERY", toasts.toasts[0].Description)
	assert.Equal(t, notification.VariantSuccess, toasts.toasts[0].Variant)

	require.Len(t, rec.events, 1)
	assert.Equal(t, events.StatusChange{OrderID: "DB97531", From: "pending", To: "out_for_delivery"}, rec.events[0].Payload)
}

func TestUpdateOrderStatusKeepsLaterSteps(t *testing.T) {
	svc, _ := newOrders(t)

	order, err := svc.UpdateOrderStatus("DB24680", models.OrderOutForDelivery, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, order.CurrentStep())
	step := order.TrackingSteps[3]
	assert.True(t, step.Completed)
	require.NotNil(t, step.Time)
	assert.Equal(t, time.Date(2023, time.October, 20, 10, 15, 0, 0, time.Local), *step.Time)

	stored, err := svc.GetOrderByID("DB24680")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.CurrentStep())

	order, err = svc.UpdateOrderStatus("DB13579", models.OrderPending, nil)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 3, order.CurrentStep())
	for _, step := range order.TrackingSteps[:3] {
		assert.NotNil(t, step.Time)
	}
}

func TestUpdateOrderStatusDeliveredCompletesEverything(t *testing.T) {
	svc, _ := newOrders(t)

	order, err := svc.UpdateOrderStatus("DB24680", models.OrderDelivered, nil)
	require.NoError(t, err)
	assert.Equal(t, len(models.TrackingStepLabels), order.CurrentStep())
	for _, step := range order.TrackingSteps {
		assert.True(t, step.Completed)
		assert.NotNil(t, step.Time)
	}
}

func TestUpdateOrderStatusCancelFreezesSteps(t *testing.T) {
	svc, _ := newOrders(t)
	before, err := svc.GetOrderByID("DB24680")
	require.NoError(t, err)

	order, err := svc.UpdateOrderStatus("DB24680", models.OrderCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, before.TrackingSteps, order.TrackingSteps)

	_, err = svc.UpdateOrderStatus("DB24680", models.OrderProcessing, nil)
	assert.ErrorIs(t, err, ErrOrderClosed)
}

func TestUpdateOrderStatusRejects(t *testing.T) {
	svc, _ := newOrders(t)

	_, err := svc.UpdateOrderStatus("DB97531", "shipped", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus("DB00000", models.OrderProcessing, nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.UpdateOrderStatus("DB12345", models.OrderProcessing, nil)
	assert.ErrorIs(t, err, ErrOrderClosed)

	_, err = svc.UpdateOrderStatus("DB12345", models.OrderDelivered, nil)
	assert.NoError(t, err)
}

func TestUpdateOrderStatusConcurrentClose(t *testing.T) {
	svc, _ := newOrders(t)

	targets := []models.OrderStatus{models.OrderDelivered, models.OrderCancelled}
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, status := range targets {
		wg.Add(1)
		go func(i int, status models.OrderStatus) {
			defer wg.Done()
			_, errs[i] = svc.UpdateOrderStatus("DB24680", status, nil)
		}(i, status)
	}
	wg.Wait()

	closed := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		require.True(t, errors.Is(err, ErrOrderClosed), "unexpected error: %v", err)
		closed++
	}
	assert.Equal(t, 1, closed)

	order, err := svc.GetOrderByID("DB24680")
	require.NoError(t, err)
	assert.True(t, order.Status.Terminal())
}
