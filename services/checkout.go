package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
	"ecommerce-backend/store"
)

// CheckoutService turns a cart into an order snapshot and manages the order
// lifecycle afterwards.
type CheckoutService struct {
	products store.ProductStore
	carts    store.CartStore
	orders   store.OrderStore
}

func NewCheckoutService(products store.ProductStore, carts store.CartStore, orders store.OrderStore) *CheckoutService {
	return &CheckoutService{products: products, carts: carts, orders: orders}
}

// CreateOrder snapshots the user's cart into a Pending order priced at the
// products' current prices, then empties the cart. The two writes are not
// transactional: a failure after the insert leaves both the order and a
// non-empty cart.
func (s *CheckoutService) CreateOrder(ctx context.Context, userID primitive.ObjectID) (*models.Order, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	total := 0.0
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve product %s: %w", item.ProductID.Hex(), err)
		}
		total += product.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order := &models.Order{
		UserID:     userID,
		Items:      items,
		TotalPrice: total,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Warn().Err(err).Str("orderId", id.Hex()).Msg("order created but cart not cleared")
		return nil, err
	}
	return order, nil
}

// ListOrders returns the user's orders with product details resolved per line.
func (s *CheckoutService) ListOrders(ctx context.Context, userID primitive.ObjectID) ([]models.OrderView, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		view := models.OrderView{Order: order, Lines: []models.CartLine{}}
		for _, item := range order.Items {
			product, err := s.products.FindByID(ctx, item.ProductID)
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			view.Lines = append(view.Lines, models.CartLine{Product: *product, Quantity: item.Quantity})
		}
		views = append(views, view)
	}
	return views, nil
}

// SetStatus is the admin direct status set. Any known status is accepted from
// any current status; there is no forward-only transition check.
func (s *CheckoutService) SetStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !models.KnownStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidArgument, status)
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *CheckoutService) DeleteOrder(ctx context.Context, orderID primitive.ObjectID) error {
	return s.orders.Delete(ctx, orderID)
}
