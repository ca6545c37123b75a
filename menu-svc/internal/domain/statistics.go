package domain

import "github.com/shopspring/decimal"

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod maps anything it does not recognise to PeriodAll.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw)
	}
	return PeriodAll
}

type DishSales struct {
	DishID  int             `json:"dish_id"`
	Dish    string          `json:"dish"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DishRevenue is one revenueByDish entry; topDishes entries use DishSales.
type DishRevenue struct {
	DishID  int             `json:"dish_id"`
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type StatisticsReport struct {
	Period        Period          `json:"period"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TopDishes     []DishSales     `json:"topDishes"`
	RevenueByDish []DishRevenue   `json:"revenueByDish"`
}
