package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB with a bounded startup timeout.
func Connect(uri string) (*mongo.Client, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

type Stores struct {
	Users    UserStore
	Products ProductStore
	Carts    CartStore
	Orders   OrderStore
}

func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:    &MongoUsers{col: db.Collection("users")},
		Products: &MongoProducts{col: db.Collection("products")},
		Carts:    &MongoCarts{col: db.Collection("carts")},
		Orders:   &MongoOrders{col: db.Collection("orders")},
	}
}
