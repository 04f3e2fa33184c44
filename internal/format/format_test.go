package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₹50", Currency(50))
	assert.Equal(t, "₹992", Currency(992))
	assert.Equal(t, "₹1,199", Currency(1199))
}

func TestTimes(t *testing.T) {
	ts := time.Date(2023, time.October, 10, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "October 10, 2023", Date(ts))
	assert.Equal(t, "10:30 AM", Clock(ts))
	assert.Equal(t, "Oct 10, 10:30 AM", StepTime(ts))
}

func TestDeliveryWindow(t *testing.T) {
	noonish := time.Date(2024, time.March, 1, 11, 45, 0, 0, time.UTC)
	assert.Equal(t, "Today, 12:15 PM - 12:45 PM", DeliveryWindow(noonish))

	lateNight := time.Date(2024, time.March, 1, 23, 5, 0, 0, time.UTC)
	assert.Equal(t, "Today, 11:35 PM - 12:05 AM", DeliveryWindow(lateNight))
}
