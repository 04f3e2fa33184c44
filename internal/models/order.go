package models

import (
	"strings"
	"time"
)

type Order struct {
	ID                string         `json:"id" gorm:"primaryKey;size:16"`
	UserID            uint           `json:"user_id" gorm:"index;not null"`
	Items             []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount       int            `json:"total_amount" gorm:"not null"`
	Date              time.Time      `json:"date" gorm:"not null"`
	Status            OrderStatus    `json:"status" gorm:"type:varchar(32);default:'pending'"` // pending, processing, out_for_delivery, delivered, cancelled
	DeliveryAddress   string         `json:"delivery_address"`
	PaymentMethod     string         `json:"payment_method"`
	EstimatedDelivery string         `json:"estimated_delivery"`
	TrackingSteps     []TrackingStep `json:"tracking_steps" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderProcessing     OrderStatus = "processing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderOutForDelivery, OrderDelivered, OrderCancelled}

// stepIndex maps a status to the last tracking step it implies.
var stepIndex = map[OrderStatus]int{
	OrderPending:        0,
	OrderProcessing:     1,
	OrderOutForDelivery: 2,
	OrderDelivered:      4,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// StepIndex reports the tracking step index implied by the status. Cancelled
// implies no step.
func (s OrderStatus) StepIndex() (int, bool) {
	idx, ok := stepIndex[s]
	return idx, ok
}

// Terminal reports whether no further status change is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Label is the upper-cased display form, e.g. "OUT FOR DELIVERY".
func (s OrderStatus) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

const (
	StepOrderPlaced        = "Order Placed"
	StepOrderConfirmed     = "Order Confirmed"
	StepPreparationStarted = "Preparation Started"
	StepOutForDelivery     = "Out for Delivery"
	StepDelivered          = "Delivered"
)

var TrackingStepLabels = []string{
	StepOrderPlaced,
	StepOrderConfirmed,
	StepPreparationStarted,
	StepOutForDelivery,
	StepDelivered,
}

type TrackingStep struct {
	ID        uint       `json:"-" gorm:"primaryKey"`
	OrderID   string     `json:"-" gorm:"index;size:16;not null"`
	Position  int        `json:"-" gorm:"not null"`
	Step      string     `json:"step" gorm:"not null"`
	Completed bool       `json:"completed"`
	Time      *time.Time `json:"time,omitempty"`
}

// NewTrackingSteps builds the fixed step sequence with "Order Placed"
// completed at placedAt.
func NewTrackingSteps(placedAt time.Time) []TrackingStep {
	steps := make([]TrackingStep, len(TrackingStepLabels))
	for i, label := range TrackingStepLabels {
		steps[i] = TrackingStep{Position: i, Step: label}
	}
	t := placedAt
	steps[0].Completed = true
	steps[0].Time = &t
	return steps
}

// CurrentStep is the index of the first incomplete tracking step, or the
// number of steps when all of them are completed.
func (o *Order) CurrentStep() int {
	for i, step := range o.TrackingSteps {
		if !step.Completed {
			return i
		}
	}
	return len(o.TrackingSteps)
}

// ItemCount is the total quantity across all lines.
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Clone returns a deep copy so callers can mutate it freely.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	c.TrackingSteps = make([]TrackingStep, len(o.TrackingSteps))
	for i, step := range o.TrackingSteps {
		if step.Time != nil {
			t := *step.Time
			step.Time = &t
		}
		c.TrackingSteps[i] = step
	}
	return &c
}
