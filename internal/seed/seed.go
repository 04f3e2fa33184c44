// Package seed holds the storefront's static mock catalog, orders and users.
// Every accessor returns fresh copies, so callers may mutate the result.
package seed

import (
	"time"

	"bakery_storefront/internal/models"
)

const defaultAddress = "123 Main St, Mumbai 400001"

// Products returns the full mock catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		p.Images = append([]string(nil), p.Images...)
		p.Sizes = append([]models.SizeVariant(nil), p.Sizes...)
		p.Reviews = append([]models.Review(nil), p.Reviews...)
		for j := range p.Reviews {
			p.Reviews[j].ProductID = p.ID
		}
		out[i] = p
	}
	return out
}

// Users returns the two demo accounts.
func Users() []models.User {
	return []models.User{
		{
			ID:       1,
			Username: "test123",
			Name:     "Test User",
			Email:    "testuser@example.com",
			Phone:    "+91 9876543210",
			Address:  defaultAddress,
		},
		{
			ID:       2,
			Username: "admin",
			Name:     "Admin User",
			Email:    "admin@Peekusbakery.com",
			Phone:    "+91 9876543211",
			Address:  "456 Admin Ave, Mumbai 400002",
			IsAdmin:  true,
		},
	}
}

type seedLine struct {
	productID uint
	price     int
	quantity  int
	size      string
}

type seedOrder struct {
	id        string
	lines     []seedLine
	total     int
	date      time.Time
	status    models.OrderStatus
	payment   string
	estimated string
	steps     []time.Time
}

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2023, month, day, hour, min, 0, 0, time.Local)
}

var orders = []seedOrder{
	{
		id:        "DB12345",
		lines:     []seedLine{{1, 499, 1, "Medium (1kg)"}, {3, 199, 2, "Small (500g)"}},
		total:     897,
		date:      at(time.October, 10, 10, 30),
		status:    models.OrderDelivered,
		payment:   "Credit Card",
		estimated: "Oct 10, 2023, 11:30 AM - 12:30 PM",
		steps: []time.Time{
			at(time.October, 10, 10, 30),
			at(time.October, 10, 10, 35),
			at(time.October, 10, 10, 45),
			at(time.October, 10, 11, 30),
			at(time.October, 10, 12, 15),
		},
	},
	{
		id:        "DB67890",
		lines:     []seedLine{{4, 349, 1, "Box of 6"}},
		total:     349,
		date:      at(time.October, 15, 14, 45),
		status:    models.OrderDelivered,
		payment:   "Cash on Delivery",
		estimated: "Oct 15, 2023, 3:45 PM - 4:45 PM",
		steps: []time.Time{
			at(time.October, 15, 14, 45),
			at(time.October, 15, 14, 50),
			at(time.October, 15, 15, 0),
			at(time.October, 15, 15, 45),
			at(time.October, 15, 16, 20),
		},
	},
	{
		id:        "DB24680",
		lines:     []seedLine{{2, 239, 1, "Pack of 4"}, {6, 549, 1, "6 inch (serves 6-8)"}},
		total:     788,
		date:      at(time.October, 20, 9, 15),
		status:    models.OrderOutForDelivery,
		payment:   "Online Payment",
		estimated: "Oct 20, 2023, 10:15 AM - 11:15 AM",
		steps: []time.Time{
			at(time.October, 20, 9, 15),
			at(time.October, 20, 9, 20),
			at(time.October, 20, 9, 30),
			at(time.October, 20, 10, 15),
		},
	},
	{
		id:        "DB13579",
		lines:     []seedLine{{8, 399, 2, "4 inch (individual)"}},
		total:     798,
		date:      at(time.November, 1, 16, 30),
		status:    models.OrderProcessing,
		payment:   "Credit Card",
		estimated: "Nov 1, 2023, 5:30 PM - 6:30 PM",
		steps: []time.Time{
			at(time.November, 1, 16, 30),
			at(time.November, 1, 16, 35),
			at(time.November, 1, 16, 45),
		},
	},
	{
		id:        "DB97531",
		lines:     []seedLine{{10, 299, 1, "Box of 4"}},
		total:     299,
		date:      at(time.November, 5, 11, 0),
		status:    models.OrderPending,
		payment:   "Cash on Delivery",
		estimated: "Nov 5, 2023, 12:00 PM - 1:00 PM",
		steps:     []time.Time{at(time.November, 5, 11, 0)},
	},
}

// Orders returns the mock order history of user 1. The first len(steps)
// tracking steps of each order are completed.
func Orders() []models.Order {
	images := make(map[uint]string, len(products))
	names := make(map[uint]string, len(products))
	for i := range products {
		images[products[i].ID] = products[i].PrimaryImage()
		names[products[i].ID] = products[i].Name
	}

	var lineID uint
	out := make([]models.Order, 0, len(orders))
	for _, so := range orders {
		o := models.Order{
			ID:                so.id,
			UserID:            1,
			TotalAmount:       so.total,
			Date:              so.date,
			Status:            so.status,
			DeliveryAddress:   defaultAddress,
			PaymentMethod:     so.payment,
			EstimatedDelivery: so.estimated,
		}
		for _, l := range so.lines {
			lineID++
			o.Items = append(o.Items, models.OrderItem{
				ID:        lineID,
				OrderID:   so.id,
				ProductID: l.productID,
				Name:      names[l.productID],
				Price:     l.price,
				Quantity:  l.quantity,
				Image:     images[l.productID],
				Size:      l.size,
			})
		}
		o.TrackingSteps = make([]models.TrackingStep, len(models.TrackingStepLabels))
		for i, label := range models.TrackingStepLabels {
			step := models.TrackingStep{OrderID: so.id, Position: i, Step: label}
			if i < len(so.steps) {
				t := so.steps[i]
				step.Completed = true
				step.Time = &t
			}
			o.TrackingSteps[i] = step
		}
		out = append(out, o)
	}
	return out
}

// Passwords returns the demo password of each account in Users, by username.
func Passwords() map[string]string {
	return map[string]string{
		"test123": "test123",
		"admin":   "admin123",
	}
}
