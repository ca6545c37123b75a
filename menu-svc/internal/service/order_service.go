package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"
)

var (
	ErrInvalidOrder      = errors.New("invalid order payload")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)

type OrderService struct {
	repo      OrderRepository
	dishes    DishRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, dishes DishRepository, qr QRGenerator, publisher OrderPublisher) *OrderService {
	return &OrderService{repo: repo, dishes: dishes, qrEncoder: qr, publisher: publisher, now: time.Now}
}

// Create stores the order as submitted: the total is trusted, not recomputed.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	for _, item := range order.Items {
		if item.DishID <= 0 || item.Quantity < 1 || item.Price.IsNegative() {
			return fmt.Errorf("%w: bad item for dish %d", ErrInvalidOrder, item.DishID)
		}
	}
	if order.Total.IsNegative() {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidOrder)
	}
	if err := s.resolveDishNames(ctx, order.Items); err != nil {
		return err
	}

	order.Status = domain.StatusPending
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return err
	}

	s.storeQRCode(ctx, order.ID)
	order.QRCode = s.QRLink(order.ID)

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.EventOrderCreated,
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
		Items:   order.Items,
	})
	return nil
}

// resolveDishNames fills item names from the catalog so events and responses
// carry them even when the client only sent dish ids.
func (s *OrderService) resolveDishNames(ctx context.Context, items []domain.OrderItem) error {
	if s.dishes == nil {
		return nil
	}
	for i := range items {
		dish, err := s.dishes.GetDish(ctx, items[i].DishID)
		if errors.Is(err, domain.ErrDishNotFound) {
			return fmt.Errorf("%w: dish %d does not exist", ErrInvalidOrder, items[i].DishID)
		}
		if err != nil {
			return err
		}
		items[i].DishName = dish.Name
	}
	return nil
}

func (s *OrderService) storeQRCode(ctx context.Context, orderID int) []byte {
	if s.qrEncoder == nil {
		return nil
	}
	qr, err := s.qrEncoder.Generate(orderID)
	if err != nil {
		log.Printf("[menu-svc] WARNING: failed to generate QR code for order %d: %v", orderID, err)
		return nil
	}
	if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
		log.Printf("[menu-svc] WARNING: failed to store QR code for order %d: %v", orderID, err)
	}
	return qr
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) SetStatus(ctx context.Context, id int, raw string) (*domain.Order, error) {
	next, err := domain.ParseOrderStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, raw)
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}
	if order.Status == next {
		return order, nil
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.EventOrderStatusChanged,
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
	})
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, id int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 {
		if regenerated := s.storeQRCode(ctx, id); regenerated != nil {
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

// publish is best effort: the order is already persisted.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now()
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[menu-svc] WARNING: failed to publish %s for order %d: %v", event.Type, event.OrderID, err)
	}
}
