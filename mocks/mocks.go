package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
	"ecommerce-backend/payment"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email string) error {
	args := m.Called(ctx, id, name, email)
	return args.Error(0)
}

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) Insert(ctx context.Context, p *models.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, id primitive.ObjectID, upd *models.ProductUpdate) (*models.Product, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartStore) Upsert(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderStore) SetSessionID(ctx context.Context, id primitive.ObjectID, sessionID string) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func (m *MockOrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateSession(ctx context.Context, items []payment.LineItem, orderID, userID string) (*payment.Session, error) {
	args := m.Called(ctx, items, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func (m *MockGateway) RetrieveSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}
