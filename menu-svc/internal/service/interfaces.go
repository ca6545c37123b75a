package service

import (
	"context"
	"io"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
}

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context, categoryID int) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	OrdersCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type CartStore interface {
	LoadCart(ctx context.Context, id string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
}

type MediaStore interface {
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, category *domain.Category, image *Upload) error
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category, image *Upload) error
	Delete(ctx context.Context, id int) error
}

type DishServiceInterface interface {
	Create(ctx context.Context, dish *domain.Dish, image *Upload) error
	List(ctx context.Context, categoryID int) ([]domain.Dish, error)
	Get(ctx context.Context, id int) (*domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish, image *Upload) error
	Delete(ctx context.Context, id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id int, status string) (*domain.Order, error)
	GetQRCode(ctx context.Context, id int) ([]byte, error)
	QRLink(orderID int) string
}

type StatisticsServiceInterface interface {
	Report(ctx context.Context, period string) (domain.StatisticsReport, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	AddDish(ctx context.Context, cartID string, dishID int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID string, dishID, quantity int) (*domain.Cart, error)
	RemoveDish(ctx context.Context, cartID string, dishID int) (*domain.Cart, error)
	ToggleFavorite(ctx context.Context, cartID string, dishID int) (*domain.Cart, error)
	Checkout(ctx context.Context, cartID string) (*domain.Order, error)
}

var (
	_ CategoryServiceInterface   = (*CategoryService)(nil)
	_ DishServiceInterface       = (*DishService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ StatisticsServiceInterface = (*StatisticsService)(nil)
	_ CartServiceInterface       = (*CartService)(nil)
)
