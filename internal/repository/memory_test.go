package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/seed"
)

func ids(products []models.Product) []uint {
	var out []uint
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestMemoryProductRepository(t *testing.T) {
	repo := NewMemoryProductRepository(seed.Products())

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 15)

	p, err := repo.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Artisan Sourdough Bread", p.Name)

	_, err = repo.GetByID(15)
	assert.ErrorIs(t, err, ErrNotFound)

	breads, err := repo.GetByCategory("breads")
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5, 9, 14}, ids(breads))

	everything, err := repo.GetByCategory("all")
	require.NoError(t, err)
	assert.Len(t, everything, 15)

	featured, err := repo.GetFeatured()
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 8}, ids(featured))
}

func TestMemoryProductSearch(t *testing.T) {
	repo := NewMemoryProductRepository(seed.Products())

	byName, _ := repo.Search("CROISSANT")
	assert.Equal(t, []uint{2, 11}, ids(byName))

	byCategory, _ := repo.Search("seasonal")
	assert.Contains(t, ids(byCategory), uint(8))
	assert.Contains(t, ids(byCategory), uint(16))

	none, _ := repo.Search("pizza")
	assert.Empty(t, none)
}

func TestMemoryOrderRepository(t *testing.T) {
	repo := NewMemoryOrderRepository(seed.Orders())

	order, err := repo.GetByID("DB24680")
	require.NoError(t, err)
	assert.Equal(t, models.OrderOutForDelivery, order.Status)

	_, err = repo.GetByID("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)

	order.Status = models.OrderDelivered
	order.TrackingSteps[4].Completed = true
	again, _ := repo.GetByID("DB24680")
	assert.Equal(t, models.OrderOutForDelivery, again.Status, "returned orders must be copies")

	require.NoError(t, repo.Update(order))
	again, _ = repo.GetByID("DB24680")
	assert.Equal(t, models.OrderDelivered, again.Status)
	assert.True(t, again.TrackingSteps[4].Completed)

	assert.ErrorIs(t, repo.Update(&models.Order{ID: "NOPE"}), ErrNotFound)
}

func TestMemoryOrderRepositoryCreate(t *testing.T) {
	repo := NewMemoryOrderRepository(seed.Orders())

	require.NoError(t, repo.Create(&models.Order{ID: "DB00001", UserID: 3}))
	assert.Error(t, repo.Create(&models.Order{ID: "DB00001"}))

	all, _ := repo.GetAll()
	assert.Len(t, all, 6)
	assert.Equal(t, "DB00001", all[5].ID)

	mine, _ := repo.GetByUserID(1)
	assert.Len(t, mine, 5)
	theirs, _ := repo.GetByUserID(3)
	assert.Len(t, theirs, 1)
}
