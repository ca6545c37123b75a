package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventOrderCreated = "order_created"

type OrderItem struct {
	DishID   int             `json:"dish"`
	DishName string          `json:"dish_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderEvent mirrors the messages menu-svc writes to the orders topic.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items"`
	Timestamp time.Time       `json:"timestamp"`
}

type DishCount struct {
	DishID int    `json:"dish_id"`
	Dish   string `json:"dish"`
	Count  int    `json:"count"`
}

type DailySales struct {
	Date    string      `json:"date"`
	Orders  int         `json:"orders"`
	Revenue float64     `json:"revenue"`
	Top     []DishCount `json:"top"`
}
