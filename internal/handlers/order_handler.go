package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/format"
	"bakery_storefront/internal/modal"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/services"
)

type OrderHandler struct {
	orderService    services.OrderService
	checkoutService services.CheckoutService
	board           *modal.Board
	log             *zap.Logger
}

func NewOrderHandler(
	orderService services.OrderService,
	checkoutService services.CheckoutService,
	board *modal.Board,
	log *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		board:           board,
		log:             log,
	}
}

type stepView struct {
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
}

type orderView struct {
	*models.Order
	StatusLabel  string     `json:"status_label"`
	DisplayDate  string     `json:"display_date"`
	DisplayTotal string     `json:"display_total"`
	CurrentStep  int        `json:"current_step"`
	Steps        []stepView `json:"steps"`
}

func viewOrder(o *models.Order) orderView {
	v := orderView{
		Order:        o,
		StatusLabel:  o.Status.Label(),
		DisplayDate:  format.Date(o.Date),
		DisplayTotal: format.Currency(o.TotalAmount),
		CurrentStep:  o.CurrentStep(),
		Steps:        make([]stepView, 0, len(o.TrackingSteps)),
	}
	for _, step := range o.TrackingSteps {
		sv := stepView{Step: step.Step, Completed: step.Completed}
		if step.Time != nil {
			sv.Time = format.StepTime(*step.Time)
		}
		v.Steps = append(v.Steps, sv)
	}
	return v
}

func viewOrders(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, viewOrder(&orders[i]))
	}
	return views
}

// GetCheckout returns the cart with the form prefilled from the logged-in user.
func (h *OrderHandler) GetCheckout(c *gin.Context) {
	s := currentSession(c)
	snapshot := s.Cart.Snapshot()
	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "redirect": "/menu"})
		return
	}

	var user *models.User
	if u, ok := s.Identity.User(); ok {
		user = &u
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    cartView(snapshot),
		"details": h.checkoutService.Defaults(user),
	})
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	s := currentSession(c)

	var details services.CheckoutDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var user *models.User
	if u, ok := s.Identity.User(); ok {
		user = &u
	}

	placement, err := h.checkoutService.PlaceOrder(s.ID, s.Cart, details, user)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "redirect": "/menu"})
		return
	case errors.Is(err, services.ErrCheckoutIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all required fields", "missing": details.Missing()})
		return
	case err != nil:
		h.log.Error("checkout failed", zap.String("session_id", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"placement": placement,
		"modal":     h.board.Get(s.ID),
	})
}

func (h *OrderHandler) GetModal(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Get(currentSession(c).ID))
}

// CloseModal dismisses a confirmed modal. ?action=track points the client at
// the tracking page, anything else back home.
func (h *OrderHandler) CloseModal(c *gin.Context) {
	s := currentSession(c)
	state := h.board.Get(s.ID)
	if state.Visible && state.Phase == modal.PhaseProcessing {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is still processing"})
		return
	}

	tracking := h.board.Close(s.ID)
	redirect := "/"
	if c.Query("action") == "track" && tracking != "" {
		redirect = tracking
	}
	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}

// History lists the orders of the logged-in user, newest first.
func (h *OrderHandler) History(c *gin.Context) {
	user, _ := currentSession(c).Identity.User()
	orders, err := h.orderService.GetOrdersByUser(user.ID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": viewOrders(orders)})
}

func (h *OrderHandler) Tracking(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found", "links": []string{"/menu", "/order-history"}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": viewOrder(order)})
}
