package order_test

import (
	"testing"

	"registry/internal/core/domain/model/order"
	"registry/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item", func(t *testing.T) {
		item, err := order.NewItem("p1", 2, 10)

		require.NoError(t, err)
		assert.Equal(t, "p1", item.ProductID())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 10.0, item.Price(), 0)
		assert.InDelta(t, 20.0, item.Subtotal(), 0)
	})

	t.Run("should require product id", func(t *testing.T) {
		_, err := order.NewItem("", 1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should accept zero and negative quantity and price", func(t *testing.T) {
		item, err := order.NewItem("p1", -3, -1.5)

		require.NoError(t, err)
		assert.InDelta(t, 4.5, item.Subtotal(), 0)
	})
}

func TestTotal(t *testing.T) {
	t.Run("should sum price times quantity", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "p1", 2, 10),
			mustItem(t, "p2", 1, 25),
		}

		assert.InDelta(t, 45.0, order.Total(items), 0)
	})

	t.Run("should be zero for no items", func(t *testing.T) {
		assert.InDelta(t, 0.0, order.Total(nil), 0)
	})

	t.Run("should not round", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "p1", 1, 0.1),
			mustItem(t, "p2", 1, 0.2),
		}

		assert.Equal(t, 0.1+0.2, order.Total(items)) //nolint:testifylint // exact float sum is the contract
	})

	t.Run("should equal the sum for random items", func(t *testing.T) {
		for range 20 {
			items := randomItems(t)

			var want float64
			for _, item := range items {
				want += item.Price() * float64(item.Quantity())
			}

			assert.Equal(t, want, order.Total(items)) //nolint:testifylint // exact float sum is the contract
		}
	})
}

func mustItem(t *testing.T, productID string, quantity int, price float64) order.Item {
	t.Helper()

	item, err := order.NewItem(productID, quantity, price)
	require.NoError(t, err)
	return item
}

func randomItems(t *testing.T) []order.Item {
	t.Helper()

	items := make([]order.Item, 0, 5)
	for range gofakeit.Number(1, 5) {
		items = append(items, mustItem(t, gofakeit.UUID(), gofakeit.Number(1, 10), gofakeit.Price(1, 100)))
	}
	return items
}
