package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is the stored shape: one document per user, line items merged by product.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []CartItem         `bson:"items" json:"items"`
}

// CartView is the API shape with product details resolved.
type CartView struct {
	Items []CartLine `json:"items"`
}

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
