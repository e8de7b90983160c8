package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
	"ecommerce-backend/payment"
	"ecommerce-backend/store"
)

// PaymentService requests hosted checkout sessions from the payment
// collaborator and reconciles order status with the session outcome.
type PaymentService struct {
	gateway  payment.Gateway
	orders   store.OrderStore
	products store.ProductStore
	carts    store.CartStore
}

func NewPaymentService(gateway payment.Gateway, orders store.OrderStore, products store.ProductStore, carts store.CartStore) *PaymentService {
	return &PaymentService{gateway: gateway, orders: orders, products: products, carts: carts}
}

// RequestSession builds one line item per order line and asks the collaborator
// for a hosted session, tagging it with the order and user ids. The session id
// is recorded on the order and the redirect URL returned.
func (s *PaymentService) RequestSession(ctx context.Context, orderID primitive.ObjectID) (string, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	items := make([]payment.LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return "", fmt.Errorf("resolve product %s: %w", item.ProductID.Hex(), err)
		}
		items = append(items, payment.LineItem{
			Name:        product.Name,
			Description: product.Description,
			Image:       product.Image,
			UnitAmount:  int64(math.Round(product.Price * 100)),
			Quantity:    int64(item.Quantity),
		})
	}

	sess, err := s.gateway.CreateSession(ctx, items, order.ID.Hex(), order.UserID.Hex())
	if err != nil {
		log.Error().Err(err).Str("orderId", order.ID.Hex()).Msg("checkout session creation failed")
		return "", fmt.Errorf("%w: %v", models.ErrUpstreamPayment, err)
	}
	if err := s.orders.SetSessionID(ctx, order.ID, sess.ID); err != nil {
		return "", err
	}
	return sess.URL, nil
}

// Reconcile fetches the session outcome and, when paid, marks the order Paid
// and clears the owner's cart. Re-invoking on an already Paid order is a
// no-op; the terminal status is returned either way.
func (s *PaymentService) Reconcile(ctx context.Context, sessionID string) (*payment.Session, *models.Order, error) {
	sess, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", models.ErrUpstreamPayment, err)
	}
	if !sess.Paid {
		return sess, nil, nil
	}

	orderID, err := primitive.ObjectIDFromHex(sess.OrderID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session %s has no order reference", models.ErrNotFound, sessionID)
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.Status == models.OrderStatusPaid {
		return sess, order, nil
	}

	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
		return nil, nil, err
	}
	order.Status = models.OrderStatusPaid

	userID, uidErr := primitive.ObjectIDFromHex(sess.UserID)
	if uidErr != nil {
		log.Warn().Str("sessionId", sessionID).Msg("session metadata has no user reference")
	} else if err := s.carts.Clear(ctx, userID); err != nil {
		log.Warn().Err(err).Str("orderId", order.ID.Hex()).Msg("paid order reconciled but cart not cleared")
	}
	return sess, order, nil
}
