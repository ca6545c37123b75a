package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restaurant-ordering/sales-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyRetention = 7 * 24 * time.Hour
	dishNamesKey   = "sales:dishnames"
)

// Store keeps per-day counters in Redis: a sorted set of units sold per dish,
// an order counter and a revenue counter.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func dailyDishesKey(date string) string  { return "sales:daily:" + date }
func dailyOrdersKey(date string) string  { return "sales:orders:" + date }
func dailyRevenueKey(date string) string { return "sales:revenue:" + date }

func (s *Store) RecordOrder(ctx context.Context, date string, event domain.OrderEvent) error {
	dishesKey := dailyDishesKey(date)
	ordersKey := dailyOrdersKey(date)
	revenueKey := dailyRevenueKey(date)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			member := strconv.Itoa(item.DishID)
			pipe.ZIncrBy(ctx, dishesKey, float64(item.Quantity), member)
			if item.DishName != "" {
				pipe.HSet(ctx, dishNamesKey, member, item.DishName)
			}
		}
		pipe.Incr(ctx, ordersKey)
		pipe.IncrByFloat(ctx, revenueKey, event.Total.InexactFloat64())
		for _, key := range []string{dishesKey, ordersKey, revenueKey} {
			pipe.Expire(ctx, key, dailyRetention)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record order %d: %w", event.OrderID, err)
	}
	return nil
}

func (s *Store) DailySales(ctx context.Context, date string, limit int) (domain.DailySales, error) {
	sales := domain.DailySales{Date: date, Top: []domain.DishCount{}}

	orders, err := s.rdb.Get(ctx, dailyOrdersKey(date)).Int()
	if err != nil && err != redis.Nil {
		return sales, err
	}
	sales.Orders = orders

	revenue, err := s.rdb.Get(ctx, dailyRevenueKey(date)).Float64()
	if err != nil && err != redis.Nil {
		return sales, err
	}
	sales.Revenue = revenue

	results, err := s.rdb.ZRevRangeWithScores(ctx, dailyDishesKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return sales, err
	}
	if len(results) == 0 {
		return sales, nil
	}

	members := make([]string, len(results))
	for i, z := range results {
		members[i] = z.Member.(string)
	}
	names, err := s.rdb.HMGet(ctx, dishNamesKey, members...).Result()
	if err != nil {
		return sales, err
	}

	for i, z := range results {
		dishID, _ := strconv.Atoi(members[i])
		name, _ := names[i].(string)
		sales.Top = append(sales.Top, domain.DishCount{
			DishID: dishID,
			Dish:   name,
			Count:  int(z.Score),
		})
	}
	return sales, nil
}
