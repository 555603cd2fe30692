package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/internal/repository/memory"
)

const testSlot = "cart:test-session"

func newTestCartService() (*cartService, *[]cart.Event) {
	notifier := cart.NewNotifier()
	events := &[]cart.Event{}
	notifier.Subscribe(func(e cart.Event) { *events = append(*events, e) })

	return NewCartService(memory.NewRepositories(), notifier, zap.NewNop()), events
}

func pizza(quantity int) domain.LineItem {
	return domain.LineItem{
		ID:       1,
		Name:     "Pizza",
		Price:    decimal.RequireFromString("9.99"),
		ImageURL: "/img/pizza.png",
		Quantity: quantity,
	}
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("appends items in insertion order", func(t *testing.T) {
		svc, _ := newTestCartService()

		_, err := svc.AddItem(ctx, testSlot, pizza(2))
		require.NoError(t, err)

		burger := domain.LineItem{ID: 2, Name: "Burger", Price: decimal.RequireFromString("5.49"), Quantity: 1}
		updated, err := svc.AddItem(ctx, testSlot, burger)
		require.NoError(t, err)

		require.Len(t, updated, 2)
		assert.Equal(t, "Pizza", updated[0].Name)
		assert.Equal(t, "Burger", updated[1].Name)
	})

	t.Run("does not merge duplicate product IDs", func(t *testing.T) {
		svc, _ := newTestCartService()

		_, err := svc.AddItem(ctx, testSlot, pizza(1))
		require.NoError(t, err)
		updated, err := svc.AddItem(ctx, testSlot, pizza(1))
		require.NoError(t, err)

		assert.Len(t, updated, 2)
	})

	t.Run("defaults missing quantity to 1", func(t *testing.T) {
		svc, _ := newTestCartService()

		updated, err := svc.AddItem(ctx, testSlot, pizza(0))
		require.NoError(t, err)

		assert.Equal(t, 1, updated[0].Quantity)
	})

	t.Run("publishes a mutation event", func(t *testing.T) {
		svc, events := newTestCartService()

		_, err := svc.AddItem(ctx, testSlot, pizza(3))
		require.NoError(t, err)

		require.Len(t, *events, 1)
		assert.Equal(t, testSlot, (*events)[0].SlotKey)
		assert.Equal(t, 1, (*events)[0].ItemCount)
		assert.Equal(t, 3, (*events)[0].TotalQuantity)
	})
}

func TestCartServiceSetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the clamped quantity", func(t *testing.T) {
		svc, _ := newTestCartService()
		_, err := svc.AddItem(ctx, testSlot, pizza(2))
		require.NoError(t, err)

		updated, err := svc.SetQuantity(ctx, testSlot, 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 1, updated[0].Quantity)

		// Visible on the next load
		reloaded, err := svc.View(ctx, testSlot, "")
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.Items[0].Quantity)
	})

	t.Run("out-of-range index is a no-op", func(t *testing.T) {
		svc, events := newTestCartService()
		_, err := svc.AddItem(ctx, testSlot, pizza(2))
		require.NoError(t, err)
		published := len(*events)

		updated, err := svc.SetQuantity(ctx, testSlot, 5, 3)

		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, 2, updated[0].Quantity)
		assert.Len(t, *events, published, "no event for a no-op")
	})
}

func TestCartServiceRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and preserves order", func(t *testing.T) {
		svc, _ := newTestCartService()
		for _, name := range []string{"Pizza", "Burger", "Fries"} {
			_, err := svc.AddItem(ctx, testSlot, domain.LineItem{
				ID: int64(len(name)), Name: name, Price: decimal.RequireFromString("1.00"), Quantity: 1,
			})
			require.NoError(t, err)
		}

		updated, err := svc.RemoveItem(ctx, testSlot, 1)

		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, "Pizza", updated[0].Name)
		assert.Equal(t, "Fries", updated[1].Name)
	})

	t.Run("out-of-range index is a no-op", func(t *testing.T) {
		svc, _ := newTestCartService()
		_, err := svc.AddItem(ctx, testSlot, pizza(1))
		require.NoError(t, err)

		updated, err := svc.RemoveItem(ctx, testSlot, -1)

		require.NoError(t, err)
		assert.Len(t, updated, 1)
	})
}

func TestCartServiceView(t *testing.T) {
	ctx := context.Background()

	t.Run("computes per-line subtotals and summary", func(t *testing.T) {
		svc, _ := newTestCartService()
		_, err := svc.AddItem(ctx, testSlot, pizza(2))
		require.NoError(t, err)

		view, err := svc.View(ctx, testSlot, "")

		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.True(t, view.Items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
		assert.True(t, view.Summary.GrandTotal.Equal(decimal.RequireFromString("24.98")))
	})

	t.Run("applies the coupon to the summary", func(t *testing.T) {
		svc, _ := newTestCartService()
		_, err := svc.AddItem(ctx, testSlot, pizza(2))
		require.NoError(t, err)

		view, err := svc.View(ctx, testSlot, "UZAIR")

		require.NoError(t, err)
		assert.True(t, view.Summary.DiscountRate.Equal(decimal.RequireFromString("0.10")))
		assert.True(t, view.Summary.DiscountedSubtotal.Equal(decimal.RequireFromString("17.98")))
		assert.True(t, view.Summary.GrandTotal.Equal(decimal.RequireFromString("22.98")))
	})

	t.Run("empty session views an empty cart", func(t *testing.T) {
		svc, _ := newTestCartService()

		view, err := svc.View(ctx, "cart:fresh", "")

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.True(t, view.Summary.Subtotal.IsZero())
	})
}

func TestCartServiceQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService()

	_, err := svc.AddItem(ctx, testSlot, pizza(2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, testSlot, domain.LineItem{
		ID: 2, Name: "Burger", Price: decimal.RequireFromString("5.49"), Quantity: 3,
	})
	require.NoError(t, err)

	quantity, err := svc.Quantity(ctx, testSlot)

	require.NoError(t, err)
	assert.Equal(t, 5, quantity)
}
