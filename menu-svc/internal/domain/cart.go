package domain

import "github.com/shopspring/decimal"

// CartItem snapshots the dish name and price at the moment it was added.
type CartItem struct {
	DishID   int             `json:"dish_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
	Quantity int             `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Favorites []int      `json:"favorites"`
}

func NewCart(id string) *Cart {
	return &Cart{ID: id, Items: []CartItem{}, Favorites: []int{}}
}

// Add bumps the quantity of a dish already in the cart, otherwise appends it
// with quantity 1.
func (c *Cart) Add(dish Dish) {
	for i := range c.Items {
		if c.Items[i].DishID == dish.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		DishID:   dish.ID,
		Name:     dish.Name,
		Price:    dish.Price,
		ImageURL: dish.ImageURL,
		Quantity: 1,
	})
}

// UpdateQuantity ignores quantities below 1; removal goes through Remove.
func (c *Cart) UpdateQuantity(dishID, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Remove(dishID int) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.DishID != dishID {
			items = append(items, item)
		}
	}
	c.Items = items
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// ToggleFavorite flips membership and returns whether dishID is now a favorite.
func (c *Cart) ToggleFavorite(dishID int) bool {
	for i, id := range c.Favorites {
		if id == dishID {
			c.Favorites = append(c.Favorites[:i], c.Favorites[i+1:]...)
			return false
		}
	}
	c.Favorites = append(c.Favorites, dishID)
	return true
}

// OrderItems converts the cart lines into order lines at their snapshotted prices.
func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderItem{
			DishID:   item.DishID,
			DishName: item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return items
}
