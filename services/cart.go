package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
	"ecommerce-backend/store"
)

// CartService owns the per-user staging cart. Each operation is a single
// read-modify-write of the user's cart document; stock checks are advisory
// (checked against the product at call time, never reserved).
type CartService struct {
	products store.ProductStore
	carts    store.CartStore
}

func NewCartService(products store.ProductStore, carts store.CartStore) *CartService {
	return &CartService{products: products, carts: carts}
}

// GetCart returns the user's cart with product details resolved, or an empty
// cart when the user has none yet.
func (s *CartService) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartView, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return &models.CartView{Items: []models.CartLine{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart.Items)
}

func (s *CartService) AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.CartView, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		cart = &models.Cart{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	merged := quantity
	idx := -1
	for i, item := range cart.Items {
		if item.ProductID == productID {
			merged += item.Quantity
			idx = i
			break
		}
	}
	if merged > product.Stock {
		return nil, fmt.Errorf("%w: %s has %d in stock", models.ErrInsufficientStock, product.Name, product.Stock)
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = merged
	} else {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	}
	if err := s.carts.Upsert(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart.Items)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", models.ErrInvalidArgument)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, fmt.Errorf("%w: %s has %d in stock", models.ErrInsufficientStock, product.Name, product.Stock)
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, item := range cart.Items {
		if item.ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: product not in cart", models.ErrNotFound)
	}
	cart.Items[idx].Quantity = quantity
	if err := s.carts.Upsert(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart.Items)
}

// RemoveItem filters the product out of the cart. Removing a product that is
// not in the cart is not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartView, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return &models.CartView{Items: []models.CartLine{}}, nil
	}
	if err != nil {
		return nil, err
	}
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	if err := s.carts.Upsert(ctx, userID, items); err != nil {
		return nil, err
	}
	return s.resolve(ctx, items)
}

func (s *CartService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	return s.carts.Clear(ctx, userID)
}

// resolve attaches product details to each line. Lines whose product has
// since been deleted are dropped from the view.
func (s *CartService) resolve(ctx context.Context, items []models.CartItem) (*models.CartView, error) {
	view := &models.CartView{Items: []models.CartLine{}}
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, models.CartLine{Product: *product, Quantity: item.Quantity})
	}
	return view, nil
}
