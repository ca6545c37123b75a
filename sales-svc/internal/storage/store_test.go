package storage

import (
	"context"
	"testing"
	"time"

	"restaurant-ordering/sales-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func order(id int, total string, items ...domain.OrderItem) domain.OrderEvent {
	return domain.OrderEvent{
		Type:    domain.EventOrderCreated,
		OrderID: id,
		Total:   decimal.RequireFromString(total),
		Items:   items,
	}
}

func TestStore_RecordAndReadDailySales(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, "2024-05-10", order(1, "30",
		domain.OrderItem{DishID: 1, DishName: "A", Quantity: 2})))
	require.NoError(t, store.RecordOrder(ctx, "2024-05-10", order(2, "20.5",
		domain.OrderItem{DishID: 2, DishName: "B", Quantity: 1},
		domain.OrderItem{DishID: 1, DishName: "A", Quantity: 1})))
	require.NoError(t, store.RecordOrder(ctx, "2024-05-11", order(3, "5",
		domain.OrderItem{DishID: 2, DishName: "B", Quantity: 9})))

	sales, err := store.DailySales(ctx, "2024-05-10", 5)

	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", sales.Date)
	assert.Equal(t, 2, sales.Orders)
	assert.InDelta(t, 50.5, sales.Revenue, 0.0001)
	require.Len(t, sales.Top, 2)
	assert.Equal(t, domain.DishCount{DishID: 1, Dish: "A", Count: 3}, sales.Top[0])
	assert.Equal(t, domain.DishCount{DishID: 2, Dish: "B", Count: 1}, sales.Top[1])

	ttl := mr.TTL("sales:daily:2024-05-10")
	assert.Equal(t, 7*24*time.Hour, ttl)
}

func TestStore_DailySalesLimit(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		require.NoError(t, store.RecordOrder(ctx, "2024-05-10", order(i, "1",
			domain.OrderItem{DishID: i, DishName: "dish", Quantity: i})))
	}

	sales, err := store.DailySales(ctx, "2024-05-10", 2)

	require.NoError(t, err)
	require.Len(t, sales.Top, 2)
	assert.Equal(t, 4, sales.Top[0].DishID)
	assert.Equal(t, 3, sales.Top[1].DishID)
}

func TestStore_DailySalesEmptyDay(t *testing.T) {
	store, _ := newTestStore(t)

	sales, err := store.DailySales(context.Background(), "2030-01-01", 5)

	require.NoError(t, err)
	assert.Equal(t, 0, sales.Orders)
	assert.Zero(t, sales.Revenue)
	assert.NotNil(t, sales.Top)
	assert.Empty(t, sales.Top)
}
