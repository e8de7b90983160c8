package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// KnownStatus reports whether s is one of the recognized order statuses.
// There is no ordering check: an admin may set any known status at any time.
func KnownStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order line items are a snapshot copied from the cart at creation time,
// never a live reference. Status is the only field mutated afterwards,
// besides the checkout session id attached when payment is requested.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	Status          OrderStatus        `bson:"status" json:"status"`
	StripeSessionID string             `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderView is an order with product details resolved for each line.
type OrderView struct {
	Order
	Lines []CartLine `json:"products"`
}
