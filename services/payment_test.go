package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/mocks"
	"ecommerce-backend/models"
	"ecommerce-backend/payment"
)

func TestPaymentService_RequestSession(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	order := &models.Order{
		ID:     orderID,
		UserID: userID,
		Items:  []models.OrderItem{{ProductID: productID, Quantity: 3}},
		Status: models.OrderStatusPending,
	}
	product := &models.Product{ID: productID, Name: "Teak Oil", Description: "500ml", Price: 19.99, Stock: 5}

	t.Run("builds line items in cents and records the session id", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		orders.On("FindByID", mock.Anything, orderID).Return(order, nil)
		products.On("FindByID", mock.Anything, productID).Return(product, nil)
		gateway.On("CreateSession", mock.Anything, mock.MatchedBy(func(items []payment.LineItem) bool {
			return len(items) == 1 &&
				items[0].Name == "Teak Oil" &&
				items[0].UnitAmount == 1999 &&
				items[0].Quantity == 3
		}), orderID.Hex(), userID.Hex()).Return(&payment.Session{
			ID:  "cs_test_123",
			URL: "https://checkout.example.com/cs_test_123",
		}, nil)
		orders.On("SetSessionID", mock.Anything, orderID, "cs_test_123").Return(nil)

		url, err := NewPaymentService(gateway, orders, products, carts).
			RequestSession(context.Background(), orderID)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.example.com/cs_test_123", url)
		orders.AssertExpectations(t)
	})

	t.Run("fails when the order does not exist", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders.On("FindByID", mock.Anything, orderID).Return(nil, models.ErrNotFound)

		_, err := NewPaymentService(gateway, orders, products, carts).
			RequestSession(context.Background(), orderID)
		require.ErrorIs(t, err, models.ErrNotFound)
		gateway.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces collaborator failures as upstream errors", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		orders.On("FindByID", mock.Anything, orderID).Return(order, nil)
		products.On("FindByID", mock.Anything, productID).Return(product, nil)
		gateway.On("CreateSession", mock.Anything, mock.Anything, orderID.Hex(), userID.Hex()).
			Return(nil, errors.New("api key expired"))

		_, err := NewPaymentService(gateway, orders, products, carts).
			RequestSession(context.Background(), orderID)
		require.ErrorIs(t, err, models.ErrUpstreamPayment)
		orders.AssertNotCalled(t, "SetSessionID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentService_Reconcile(t *testing.T) {
	userID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	paidSession := &payment.Session{
		ID:      "cs_test_123",
		Status:  "paid",
		Paid:    true,
		OrderID: orderID.Hex(),
		UserID:  userID.Hex(),
	}

	t.Run("marks the order paid and clears the cart", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		gateway.On("RetrieveSession", mock.Anything, "cs_test_123").Return(paidSession, nil)
		orders.On("FindByID", mock.Anything, orderID).Return(
			&models.Order{ID: orderID, UserID: userID, Status: models.OrderStatusPending}, nil)
		orders.On("UpdateStatus", mock.Anything, orderID, models.OrderStatusPaid).Return(nil)
		carts.On("Clear", mock.Anything, userID).Return(nil)

		sess, order, err := NewPaymentService(gateway, orders, products, carts).
			Reconcile(context.Background(), "cs_test_123")
		require.NoError(t, err)
		assert.True(t, sess.Paid)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		carts.AssertCalled(t, "Clear", mock.Anything, userID)
	})

	t.Run("is a no-op on an already paid order", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		gateway.On("RetrieveSession", mock.Anything, "cs_test_123").Return(paidSession, nil)
		orders.On("FindByID", mock.Anything, orderID).Return(
			&models.Order{ID: orderID, UserID: userID, Status: models.OrderStatusPaid}, nil)

		_, order, err := NewPaymentService(gateway, orders, products, carts).
			Reconcile(context.Background(), "cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	})

	t.Run("reports an unpaid session without touching the order", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		gateway.On("RetrieveSession", mock.Anything, "cs_test_456").Return(&payment.Session{
			ID:     "cs_test_456",
			Status: "unpaid",
		}, nil)

		sess, order, err := NewPaymentService(gateway, orders, products, carts).
			Reconcile(context.Background(), "cs_test_456")
		require.NoError(t, err)
		assert.Nil(t, order)
		assert.Equal(t, "unpaid", sess.Status)
		orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("surfaces retrieval failures as upstream errors", func(t *testing.T) {
		gateway := new(mocks.MockGateway)
		orders := new(mocks.MockOrderStore)
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)

		gateway.On("RetrieveSession", mock.Anything, "cs_gone").
			Return(nil, errors.New("no such session"))

		_, _, err := NewPaymentService(gateway, orders, products, carts).
			Reconcile(context.Background(), "cs_gone")
		require.ErrorIs(t, err, models.ErrUpstreamPayment)
	})
}
