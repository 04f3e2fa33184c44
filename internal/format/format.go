// Package format renders amounts and times the way the storefront shows them.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

const (
	// DeliveryWindowStart and DeliveryWindowEnd bound the delivery estimate
	// given at checkout, relative to the time the order is placed.
	DeliveryWindowStart = 30 * time.Minute
	DeliveryWindowEnd   = 60 * time.Minute
)

// Currency formats a whole rupee amount with thousands separators, e.g. "₹1,199".
func Currency(amount int) string {
	return printer.Sprintf("₹%d", amount)
}

// Date formats an order date, e.g. "October 10, 2023".
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Clock formats a time of day, e.g. "3:04 PM".
func Clock(t time.Time) string {
	return t.Format("3:04 PM")
}

// StepTime formats a tracking step timestamp, e.g. "Oct 10, 10:30 AM".
func StepTime(t time.Time) string {
	return t.Format("Jan 2, 3:04 PM")
}

// DeliveryWindow is the estimate shown at checkout for an order placed at now.
func DeliveryWindow(now time.Time) string {
	return "Today, " + Clock(now.Add(DeliveryWindowStart)) + " - " + Clock(now.Add(DeliveryWindowEnd))
}
