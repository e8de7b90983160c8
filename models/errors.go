package models

import "errors"

// Domain errors surfaced to the HTTP layer. None are retried and none are
// fatal to the process; controllers map each to a status code.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUpstreamPayment   = errors.New("payment provider error")
)
