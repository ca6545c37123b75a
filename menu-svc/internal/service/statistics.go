package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const topDishesLimit = 5

// WindowStart returns the earliest creation time included in a report for
// period, relative to now. PeriodAll yields the zero time.
func WindowStart(period domain.Period, now time.Time) time.Time {
	switch period {
	case domain.PeriodDay:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case domain.PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case domain.PeriodMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}

// ComputeStatistics aggregates orders already restricted to the period window.
// Totals come from each order's stored total. Per-dish figures are keyed by
// dish id in discovery order and skip items whose dish no longer exists.
func ComputeStatistics(period domain.Period, now time.Time, orders []domain.Order) domain.StatisticsReport {
	report := domain.StatisticsReport{
		Period:        period,
		TotalOrders:   len(orders),
		TotalRevenue:  decimal.Zero,
		TopDishes:     []domain.DishSales{},
		RevenueByDish: []domain.DishRevenue{},
	}

	index := make(map[int]int)
	for _, order := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(order.Total)
		for _, item := range order.Items {
			if item.DishDeleted || item.DishID <= 0 {
				continue
			}
			pos, ok := index[item.DishID]
			if !ok {
				pos = len(report.RevenueByDish)
				index[item.DishID] = pos
				report.RevenueByDish = append(report.RevenueByDish, domain.DishRevenue{
					DishID:  item.DishID,
					Name:    item.DishName,
					Revenue: decimal.Zero,
				})
			}
			sales := &report.RevenueByDish[pos]
			sales.Count += item.Quantity
			sales.Revenue = sales.Revenue.Add(item.Subtotal())
		}
	}

	ranked := make([]domain.DishSales, len(report.RevenueByDish))
	for i, entry := range report.RevenueByDish {
		ranked[i] = domain.DishSales{DishID: entry.DishID, Dish: entry.Name, Count: entry.Count, Revenue: entry.Revenue}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topDishesLimit {
		ranked = ranked[:topDishesLimit]
	}
	report.TopDishes = ranked
	return report
}

type StatisticsService struct {
	orders OrderRepository
	now    func() time.Time
}

func NewStatisticsService(orders OrderRepository, now func() time.Time) *StatisticsService {
	if now == nil {
		now = time.Now
	}
	return &StatisticsService{orders: orders, now: now}
}

func (s *StatisticsService) Report(ctx context.Context, rawPeriod string) (domain.StatisticsReport, error) {
	period := domain.ParsePeriod(rawPeriod)
	now := s.now()

	orders, err := s.orders.OrdersCreatedSince(ctx, WindowStart(period, now))
	if err != nil {
		return domain.StatisticsReport{}, fmt.Errorf("load orders for %s statistics: %w", period, err)
	}
	return ComputeStatistics(period, now, orders), nil
}
