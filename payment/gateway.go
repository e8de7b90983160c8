package payment

import "context"

// LineItem describes one order line for the hosted checkout page.
// UnitAmount is in minor currency units (cents).
type LineItem struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64
	Quantity    int64
}

// Session is the provider's view of a checkout session. OrderID and UserID
// round-trip through the session's opaque metadata.
type Session struct {
	ID      string
	URL     string
	Status  string
	Paid    bool
	OrderID string
	UserID  string
}

// Gateway abstracts the hosted payment collaborator. The production
// implementation is Stripe; tests substitute a mock.
type Gateway interface {
	CreateSession(ctx context.Context, items []LineItem, orderID, userID string) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)
}
