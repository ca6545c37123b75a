package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID          int             `json:"id"`
	CategoryID  int             `json:"category_id"`
	Category    *Category       `json:"category,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Order struct {
	ID        int             `json:"id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	QRCode    string          `json:"qr_code,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItem keeps the unit price captured at checkout. DishDeleted is set on
// reads when the referenced dish no longer exists.
type OrderItem struct {
	DishID      int             `json:"dish"`
	DishName    string          `json:"dish_name,omitempty"`
	DishDeleted bool            `json:"dish_deleted,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
