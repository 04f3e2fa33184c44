package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/models"
)

func TestProductsAreIndependentCopies(t *testing.T) {
	a := Products()
	b := Products()
	require.Len(t, a, 15)

	a[0].Images[0] = "changed"
	a[0].Reviews[0].Name = "changed"
	assert.NotEqual(t, "changed", b[0].Images[0])
	assert.NotEqual(t, "changed", b[0].Reviews[0].Name)
	assert.Equal(t, a[0].ID, a[0].Reviews[0].ProductID)
}

func TestOrdersTrackingStepsMatchStatus(t *testing.T) {
	orders := Orders()
	require.Len(t, orders, 5)

	byID := map[string]*models.Order{}
	for i := range orders {
		o := &orders[i]
		byID[o.ID] = o
		require.Len(t, o.TrackingSteps, 5)
		assert.Equal(t, uint(1), o.UserID)
	}

	assert.Equal(t, 5, byID["DB12345"].CurrentStep())
	assert.Equal(t, 5, byID["DB67890"].CurrentStep())
	assert.Equal(t, 4, byID["DB24680"].CurrentStep())
	assert.Equal(t, 3, byID["DB13579"].CurrentStep())
	assert.Equal(t, 1, byID["DB97531"].CurrentStep())
	assert.Equal(t, "Chocolate Delight Cake", byID["DB12345"].Items[0].Name)
	assert.NotEmpty(t, byID["DB12345"].Items[0].Image)
}
