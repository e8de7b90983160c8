package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/mocks"
	"ecommerce-backend/models"
)

func TestCheckoutService_CreateOrder(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	product := &models.Product{ID: productID, Name: "Teak Oil", Price: 10, Stock: 5}

	t.Run("snapshots the cart into a pending order and empties it", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)

		cart := &models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: 2}},
		}
		products.On("FindByID", mock.Anything, productID).Return(product, nil)
		carts.On("FindByUser", mock.Anything, userID).Return(cart, nil)
		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).Return(orderID, nil)
		carts.On("Clear", mock.Anything, userID).Return(nil)

		order, err := NewCheckoutService(products, carts, orders).CreateOrder(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, 20.0, order.TotalPrice)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		carts.AssertCalled(t, "Clear", mock.Anything, userID)

		// The order holds a snapshot: mutating the cart afterwards must not
		// reach the order's line items.
		cart.Items[0].Quantity = 99
		assert.Equal(t, 2, order.Items[0].Quantity)
	})

	t.Run("prices are taken at checkout time across lines", func(t *testing.T) {
		otherID := primitive.NewObjectID()
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)

		products.On("FindByID", mock.Anything, productID).Return(product, nil)
		products.On("FindByID", mock.Anything, otherID).Return(
			&models.Product{ID: otherID, Name: "Spice Jar", Price: 7.5, Stock: 8}, nil)
		carts.On("FindByUser", mock.Anything, userID).Return(&models.Cart{
			UserID: userID,
			Items: []models.CartItem{
				{ProductID: productID, Quantity: 1},
				{ProductID: otherID, Quantity: 4},
			},
		}, nil)
		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).Return(orderID, nil)
		carts.On("Clear", mock.Anything, userID).Return(nil)

		order, err := NewCheckoutService(products, carts, orders).CreateOrder(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, order.TotalPrice)
		require.Len(t, order.Items, 2)
	})

	t.Run("fails on an empty cart without creating an order", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)
		carts.On("FindByUser", mock.Anything, userID).Return(&models.Cart{UserID: userID}, nil)

		_, err := NewCheckoutService(products, carts, orders).CreateOrder(context.Background(), userID)
		require.ErrorIs(t, err, models.ErrEmptyCart)
		orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("fails when the user has no cart at all", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)
		carts.On("FindByUser", mock.Anything, userID).Return(nil, models.ErrNotFound)

		_, err := NewCheckoutService(products, carts, orders).CreateOrder(context.Background(), userID)
		require.ErrorIs(t, err, models.ErrEmptyCart)
		orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestCheckoutService_SetStatus(t *testing.T) {
	orderID := primitive.NewObjectID()
	pending := &models.Order{ID: orderID, Status: models.OrderStatusPending}

	t.Run("accepts any known status regardless of the current one", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)
		orders.On("FindByID", mock.Anything, orderID).Return(pending, nil)
		orders.On("UpdateStatus", mock.Anything, orderID, models.OrderStatusShipped).Return(nil)

		order, err := NewCheckoutService(products, carts, orders).
			SetStatus(context.Background(), orderID, models.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)

		_, err := NewCheckoutService(products, carts, orders).
			SetStatus(context.Background(), orderID, models.OrderStatus("Refunded"))
		require.ErrorIs(t, err, models.ErrInvalidArgument)
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when the order does not exist", func(t *testing.T) {
		products := new(mocks.MockProductStore)
		carts := new(mocks.MockCartStore)
		orders := new(mocks.MockOrderStore)
		orders.On("FindByID", mock.Anything, orderID).Return(nil, models.ErrNotFound)

		_, err := NewCheckoutService(products, carts, orders).
			SetStatus(context.Background(), orderID, models.OrderStatusPaid)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
