package service

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ordering/menu-svc/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartService owns server-side carts. Every call loads the cart by id,
// applies one change and writes it back.
type CartService struct {
	store  CartStore
	dishes DishRepository
	orders OrderServiceInterface
}

func NewCartService(store CartStore, dishes DishRepository, orders OrderServiceInterface) *CartService {
	return &CartService{store: store, dishes: dishes, orders: orders}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.store.LoadCart(ctx, cartID)
}

func (s *CartService) AddDish(ctx context.Context, cartID string, dishID int) (*domain.Cart, error) {
	dish, err := s.dishes.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, cartID, func(cart *domain.Cart) { cart.Add(*dish) })
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, dishID, quantity int) (*domain.Cart, error) {
	return s.update(ctx, cartID, func(cart *domain.Cart) { cart.UpdateQuantity(dishID, quantity) })
}

func (s *CartService) RemoveDish(ctx context.Context, cartID string, dishID int) (*domain.Cart, error) {
	return s.update(ctx, cartID, func(cart *domain.Cart) { cart.Remove(dishID) })
}

func (s *CartService) ToggleFavorite(ctx context.Context, cartID string, dishID int) (*domain.Cart, error) {
	return s.update(ctx, cartID, func(cart *domain.Cart) { cart.ToggleFavorite(dishID) })
}

// Checkout submits the cart as an order at the snapshotted prices and empties
// the cart once the order is stored.
func (s *CartService) Checkout(ctx context.Context, cartID string) (*domain.Order, error) {
	cart, err := s.store.LoadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		Items: cart.OrderItems(),
		Total: cart.TotalPrice(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	cart.Clear()
	if err := s.store.SaveCart(ctx, cart); err != nil {
		return order, fmt.Errorf("order %d created but cart not cleared: %w", order.ID, err)
	}
	return order, nil
}

func (s *CartService) update(ctx context.Context, cartID string, apply func(*domain.Cart)) (*domain.Cart, error) {
	cart, err := s.store.LoadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	apply(cart)
	if err := s.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
