package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/events"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/ping", "204"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	after := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/ping", "204"))
	assert.Equal(t, before+1, after)

	CartOperations.WithLabelValues("add").Inc()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bakery_cart_operations_total")
	assert.Contains(t, w.Body.String(), "bakery_http_requests_total")
}

func TestObserveCountsStatusChanges(t *testing.T) {
	bus := events.NewBus()
	Observe(bus)

	before := testutil.ToFloat64(OrderStatusChanges.WithLabelValues("delivered"))
	bus.Publish(events.Event{Name: events.OrderStatusChanged, Payload: events.StatusChange{OrderID: "DB24680", From: "out_for_delivery", To: "delivered"}})
	bus.Publish(events.Event{Name: events.OrderStatusChanged, Payload: "not a change"})
	assert.Equal(t, before+1, testutil.ToFloat64(OrderStatusChanges.WithLabelValues("delivered")))
}
