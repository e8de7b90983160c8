package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway drives Stripe hosted checkout. The API key is bound to this
// client instance rather than the package-level stripe.Key.
type StripeGateway struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func NewStripeGateway(secretKey, frontendURL string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:        api,
		successURL: frontendURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  frontendURL + "/cart",
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, items []LineItem, orderID, userID string) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(g.successURL),
		CancelURL:          stripe.String(g.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata("orderId", orderID)
	params.AddMetadata("userId", userID)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return fromStripe(sess), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session %s: %w", sessionID, err)
	}
	return fromStripe(sess), nil
}

func fromStripe(sess *stripe.CheckoutSession) *Session {
	return &Session{
		ID:      sess.ID,
		URL:     sess.URL,
		Status:  string(sess.PaymentStatus),
		Paid:    sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		OrderID: sess.Metadata["orderId"],
		UserID:  sess.Metadata["userId"],
	}
}
