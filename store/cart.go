package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-backend/models"
)

type MongoCarts struct {
	col *mongo.Collection
}

func (s *MongoCarts) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *MongoCarts) Upsert(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": items}},
		options.Update().SetUpsert(true))
	return err
}

func (s *MongoCarts) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}}})
	return err
}
