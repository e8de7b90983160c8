package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
)

// Store interfaces are what the service layer depends on; the Mongo
// implementations below are the only production ones. Absent documents are
// reported as models.ErrNotFound so callers never see driver errors.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email string) error
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Insert(ctx context.Context, p *models.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartStore interface {
	// FindByUser returns models.ErrNotFound when the user has no cart yet.
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// Upsert replaces the cart's line items, creating the cart document if absent.
	Upsert(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	SetSessionID(ctx context.Context, id primitive.ObjectID, sessionID string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
